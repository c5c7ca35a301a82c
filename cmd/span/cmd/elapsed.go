package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var elapsedUnit string

var elapsedCmd = &cobra.Command{
	Use:   "elapsed <value> <other>",
	Short: "Show the signed difference value - other",
	Long: `Prints the exact signed duration between two values of the same kind.
With --unit the number of complete units is printed instead, truncated
toward zero.

Examples:
  span elapsed "2024-11-30 06:32:28" "2022-01-22 06:32:28"
  span elapsed --unit day "2024-11-30 06:32:28" "2022-01-22 06:32:28"
  span elapsed --kind time 08:00:00 17:30:00`,
	Args: cobra.ExactArgs(2),
	RunE: runElapsed,
}

func init() {
	rootCmd.AddCommand(elapsedCmd)

	elapsedCmd.Flags().StringVarP(&elapsedUnit, "unit", "u", "", "count complete units instead of printing a duration")
}

func runElapsed(cmd *cobra.Command, args []string) error {
	k, err := lookupKind(kindName)
	if err != nil {
		return err
	}
	a, err := k.parse(args[0])
	if err != nil {
		return err
	}
	b, err := k.parse(args[1])
	if err != nil {
		return err
	}

	if elapsedUnit != "" {
		n, err := a.unitElapsed(elapsedUnit, b)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	}

	d, err := a.elapsed(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d)
	return nil
}
