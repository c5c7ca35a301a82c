package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	spanerror "github.com/msto63/span/core/error"
	"github.com/msto63/span/core/log"
)

var updateClear bool

var updateCmd = &cobra.Command{
	Use:   "update <value> <unit> [delta]",
	Short: "Add a signed amount of a unit to a value",
	Long: `Adds delta (default 1) units to the value. Time values wrap around
midnight; dates clamp the day after month and year changes; datetimes
carry clock overflow into the date.

With --clear the unit is reset instead (year to 1970, month and day to 1,
clock fields to 0; for datetimes the unit "time" clears the whole clock).

Examples:
  span update "2024-10-31 06:32:28" month
  span update --kind time 23:17:12 hour 1
  span update --kind date -- 2024-03-31 month -1
  span update --clear "2024-11-30 06:32:28" time`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&updateClear, "clear", false, "reset the unit instead of adding to it")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	k, err := lookupKind(kindName)
	if err != nil {
		return err
	}
	v, err := k.parse(args[0])
	if err != nil {
		return err
	}

	var result value
	if updateClear {
		if len(args) == 3 {
			return spanerror.New("--clear takes no delta").
				WithCode(spanerror.CodeInvalidInput).
				WithOperation("cli.update")
		}
		result, err = v.clear(args[1])
	} else {
		delta := 1
		if len(args) == 3 {
			delta, err = strconv.Atoi(args[2])
			if err != nil {
				return spanerror.Wrap(err, "delta must be an integer").
					WithCode(spanerror.CodeInvalidInput).
					WithOperation("cli.update").
					WithDetail("delta", args[2])
			}
		}
		result, err = v.update(args[1], delta)
	}
	if err != nil {
		return err
	}

	logger.Debug("value updated",
		log.String("kind", k.name),
		log.String("from", v.String()),
		log.String("to", result.String()))
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
