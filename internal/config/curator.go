package config

import (
	"fmt"

	"github.com/JaimeStill/curator/pkg/envvar"
)

const (
	EnvCuratorTemperature  = "CURATOR_TEMPERATURE"
	EnvCuratorSeedFile     = "CURATOR_SEED_FILE"
	EnvCuratorAutoRegister = "CURATOR_AUTO_REGISTER"
)

// CuratorConfig holds case analysis settings. SeedFile names a YAML fraud
// type seed; when empty the built-in seed is used. Temperature is nil when
// no file sets it, so an overlay can set it back to 0.
type CuratorConfig struct {
	Temperature  *float64 `toml:"temperature"`
	SeedFile     string   `toml:"seed_file"`
	AutoRegister bool     `toml:"auto_register"`
}

// TemperatureValue returns the sampling temperature, or 0 when unset.
func (c *CuratorConfig) TemperatureValue() float64 {
	if c.Temperature == nil {
		return 0
	}
	return *c.Temperature
}

// SetTemperature sets the sampling temperature.
func (c *CuratorConfig) SetTemperature(t float64) {
	c.Temperature = &t
}

// Finalize applies environment variable overrides and validation.
func (c *CuratorConfig) Finalize() error {
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay. A temperature set in the
// overlay always applies, including 0.
func (c *CuratorConfig) Merge(overlay *CuratorConfig) {
	if overlay.Temperature != nil {
		c.SetTemperature(*overlay.Temperature)
	}
	if overlay.SeedFile != "" {
		c.SeedFile = overlay.SeedFile
	}
	if overlay.AutoRegister {
		c.AutoRegister = true
	}
}

func (c *CuratorConfig) loadEnv() {
	t := c.TemperatureValue()
	envvar.Float(&t, EnvCuratorTemperature)
	c.SetTemperature(t)
	envvar.String(&c.SeedFile, EnvCuratorSeedFile)
	envvar.Bool(&c.AutoRegister, EnvCuratorAutoRegister)
}

func (c *CuratorConfig) validate() error {
	if t := c.TemperatureValue(); t < 0 || t > 2 {
		return fmt.Errorf("temperature must be between 0 and 2: %g", t)
	}
	return nil
}
