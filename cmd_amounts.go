package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/triptui/currency"
)

func newAmountsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amounts",
		Short: "Amount commands",
		Long:  `Commands for changing the amount spent on a category on one date of a trip.`,
	}

	setCmd := &cobra.Command{
		Use:   "set VALUE",
		Short: "Set an amount",
		Args:  cobra.ExactArgs(1),
		RunE:  a.amountsRun(false),
	}

	addCmd := &cobra.Command{
		Use:   "add VALUE",
		Short: "Add to an amount",
		Long:  `Add VALUE to the current amount. A negative VALUE subtracts, as long as the result stays at zero or above.
Pass it after -- so it is not read as a flag: triptui amounts add --category food -- -50`,
		Args:  cobra.ExactArgs(1),
		RunE:  a.amountsRun(true),
	}

	for _, c := range []*cobra.Command{setCmd, addCmd} {
		addTripFlag(c)
		c.Flags().String("date-index", "1", "position of the date, counting from 1")
		c.Flags().String("category", "", "category to change")
		_ = c.MarkFlagRequired("category")
	}

	cmd.AddCommand(setCmd, addCmd)
	return cmd
}

func (a *app) amountsRun(add bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		value, err := parseAmount(args[0])
		if err != nil {
			return err
		}

		rawIndex, _ := cmd.Flags().GetString("date-index")
		index, err := parseIndex(rawIndex)
		if err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		name := a.tripName(cmd)

		if add {
			err = a.tracker.AddToAmount(ctx, name, index, category, value)
		} else {
			err = a.tracker.SetAmount(ctx, name, index, category, value)
		}
		if err != nil {
			return err
		}

		current, err := a.tracker.Store().Amount(name, index, category)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s on date %d of %s is now %s\n",
			category, index+1, name, currency.Format(current, a.cfg.Currency))
		return err
	}
}
