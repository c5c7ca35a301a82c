package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/span/clock"
)

var nowOutput string

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current value from the configured clock",
	Long: `Reads the configured clock (system, utc or ntp, see [clock] in the
config file) and prints the current value of the selected kind.

Examples:
  span now
  span now --kind date --output %d.%m.%Y
  SPAN_CLOCK_SOURCE=ntp span now -v`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)

	nowCmd.Flags().StringVarP(&nowOutput, "output", "o", "", "pattern for rendering the result")
}

func runNow(cmd *cobra.Command, args []string) error {
	k, err := lookupKind(kindName)
	if err != nil {
		return err
	}

	timer := logger.StartTimer("now")
	v, err := k.now(clock.Default())
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	text := v.String()
	if nowOutput != "" {
		if text, err = v.render(nowOutput); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
