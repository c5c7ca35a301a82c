package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/span/clock"
)

var futureCmd = &cobra.Command{
	Use:   "future <value>",
	Short: "Report whether a value lies after the current moment",
	Long: `Compares the value with the configured clock and prints true or false.
Time values compare the time of day only; dates compare the calendar day.

Examples:
  span future "2030-01-01 00:00:00"
  span future --kind time 23:59:59`,
	Args: cobra.ExactArgs(1),
	RunE: runFuture,
}

func init() {
	rootCmd.AddCommand(futureCmd)
}

func runFuture(cmd *cobra.Command, args []string) error {
	k, err := lookupKind(kindName)
	if err != nil {
		return err
	}
	v, err := k.parse(args[0])
	if err != nil {
		return err
	}

	timer := logger.StartTimer("future")
	future, err := v.isInFuture(clock.Default())
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()
	fmt.Fprintln(cmd.OutOrStdout(), future)
	return nil
}
