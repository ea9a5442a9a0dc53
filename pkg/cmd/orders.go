package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradekit/ftx/pkg/ftx"
	"github.com/tradekit/ftx/pkg/ftxapi"
)

// go run ./cmd/ftxctl orders [open|history] --market=BTC-PERP
var ordersCmd = &cobra.Command{
	Use:  "orders [status]",
	Args: cobra.OnlyValidArgs,
	// default is open which means we query open orders if you haven't provided args.
	ValidArgs:    []string{"", "open", "history"},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		market, err := cmd.Flags().GetString("market")
		if err != nil {
			return fmt.Errorf("can't get the market from flags: %w", err)
		}

		status := "open"
		if len(args) != 0 {
			status = args[0]
		}

		var orders []ftxapi.Order
		switch status {
		case "open":
			orders, err = client.OpenOrders(ctx, market)
		case "history":
			side, _ := cmd.Flags().GetString("side")
			orderType, _ := cmd.Flags().GetString("type")
			orders, err = client.OrderHistory(ctx, ftx.OrderHistoryOptions{
				Market: market,
				Side:   ftxapi.Side(side),
				Type:   ftxapi.OrderType(orderType),
			})
		default:
			return fmt.Errorf("invalid status %s", status)
		}
		if err != nil {
			return err
		}

		for _, order := range orders {
			log.Infof("%s order: %+v", status, order)
		}

		return nil
	},
}

// go run ./cmd/ftxctl cancel-order 9596912
var cancelOrderCmd = &cobra.Command{
	Use:          "cancel-order [orderID]",
	Short:        "cancel one order by id, or all open orders of a market",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			var orderID uint64
			if _, err := fmt.Sscanf(args[0], "%d", &orderID); err != nil {
				return fmt.Errorf("invalid order id %s", args[0])
			}

			return client.CancelOrder(ctx, orderID)
		}

		market, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}

		return client.CancelAllOrders(ctx, market)
	},
}

func init() {
	ordersCmd.Flags().String("market", "", "the market name, like BTC-PERP")
	ordersCmd.Flags().String("side", "", "filter order history by side, buy or sell")
	ordersCmd.Flags().String("type", "", "filter order history by order type")

	cancelOrderCmd.Flags().String("market", "", "cancel all open orders of this market")

	RootCmd.AddCommand(ordersCmd)
	RootCmd.AddCommand(cancelOrderCmd)
}
