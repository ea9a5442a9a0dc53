package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// go run ./cmd/ftxctl balances
var balancesCmd = &cobra.Command{
	Use:          "balances",
	Short:        "show the wallet balances",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		balances, err := client.Balances(context.Background())
		if err != nil {
			return err
		}

		for _, balance := range balances {
			if balance.Total.IsZero() {
				continue
			}
			log.Infof("%s: free=%s total=%s usd=%s", balance.Coin, balance.Free, balance.Total, balance.UsdValue)
		}

		return nil
	},
}

// go run ./cmd/ftxctl positions
var positionsCmd = &cobra.Command{
	Use:          "positions",
	Short:        "show the open futures positions",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		positions, err := client.Positions(context.Background())
		if err != nil {
			return err
		}

		for _, position := range positions {
			if position.Size.IsZero() {
				continue
			}
			log.Infof("%s %s size=%s pnl=%s", position.Future, position.Side, position.Size, position.UnrealizedPnl)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(balancesCmd)
	RootCmd.AddCommand(positionsCmd)
}
