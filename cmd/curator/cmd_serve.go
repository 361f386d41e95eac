package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/curator/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the curator MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the analyze_case and
list_fraud_types tools. Logs are written to stderr.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	c, registry, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	return mcp.NewServer(version, c, registry, logger).Run(cmd.Context())
}
