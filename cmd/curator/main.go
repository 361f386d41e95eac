// curator is the command-line client: analyze a case, list the fraud type
// registry, or serve the curator over MCP stdio.
//
// Usage:
//
//	curator analyze [text] [--file=<path>] [--similar=<case>]... [--seed=<path>]
//	curator types [--seed=<path>]
//	curator serve [--seed=<path>]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "curator",
	Short: "Fraud case analysis backed by an LLM workflow",
	Long:  "Curator analyzes case text for fraud patterns, classifies the fraud\ntype against a registry, and summarizes the findings.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.seed, "seed", "", "YAML fraud type seed file (default: built-in seed)")
	pf.StringVar(&rootFlags.provider, "provider", "", "LLM provider name override")
	pf.StringVar(&rootFlags.model, "model", "", "LLM model name override")
	pf.StringVar(&rootFlags.baseURL, "base-url", "", "LLM provider base URL override")
	pf.Float64Var(&rootFlags.temperature, "temperature", 0, "Sampling temperature override")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
