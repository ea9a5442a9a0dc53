package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// go run ./cmd/ftxctl markets [market]
var marketsCmd = &cobra.Command{
	Use:          "markets [market]",
	Short:        "list all markets, or show a single market",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			market, err := client.Market(ctx, args[0])
			if err != nil {
				return err
			}

			log.Infof("market: %+v", market)
			return nil
		}

		markets, err := client.Markets(ctx)
		if err != nil {
			return err
		}

		for _, market := range markets {
			log.Infof("%s (%s): %+v", market.Name, market.Type, market)
		}

		return nil
	},
}

// go run ./cmd/ftxctl price BTC-PERP
var priceCmd = &cobra.Command{
	Use:          "price <market>",
	Short:        "show the current price of a market",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		price, err := client.MarketPrice(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(price.String())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(marketsCmd)
	RootCmd.AddCommand(priceCmd)
}
