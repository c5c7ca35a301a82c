package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	parseOutput string
	parseFields bool
	parseJSON   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse a value and render it again",
	Long: `Parses text as a value of the selected kind and renders it with its
pattern, or with --output when given.

Examples:
  span parse "2024-11-30 06:32:28"
  span parse --kind date --pattern %d.%m.%Y 29.02.2024 --output %F
  span parse --kind time --fields 23:17:12`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "pattern for rendering the result")
	parseCmd.Flags().BoolVar(&parseFields, "fields", false, "print each field on its own line")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print value and fields as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	k, err := lookupKind(kindName)
	if err != nil {
		return err
	}
	v, err := k.parse(args[0])
	if err != nil {
		return err
	}

	text := v.String()
	if parseOutput != "" {
		if text, err = v.render(parseOutput); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case parseJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Kind   string  `json:"kind"`
			Value  string  `json:"value"`
			Fields []field `json:"fields"`
		}{k.name, text, v.fields()})
	case parseFields:
		for _, f := range v.fields() {
			fmt.Fprintf(out, "%-7s %d\n", f.Unit, f.Value)
		}
	default:
		fmt.Fprintln(out, text)
	}
	return nil
}
