package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/curator/internal/curator"
)

var analyzeFlags struct {
	file    string
	similar []string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze case text for fraud and print the result as JSON",
	Long: `Runs the pattern analysis, classification, and summary workflow over the
case text. Text comes from the arguments, from --file, or from stdin when
--file is "-".`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeFlags.file, "file", "f", "", "Read case text from a file (- for stdin)")
	f.StringArrayVar(&analyzeFlags.similar, "similar", nil, "Similar known case (repeatable)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readCaseText(cmd.InOrStdin(), analyzeFlags.file, args)
	if err != nil {
		return err
	}

	c, _, _, err := setup(cmd)
	if err != nil {
		return err
	}

	result, err := c.AnalyzeCase(cmd.Context(), curator.TextInput{Text: text}, analyzeFlags.similar)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func readCaseText(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("provide case text as arguments or --file, not both")
	case file == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read case file: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return "", fmt.Errorf("case text required")
	}
}
