package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradekit/ftx/pkg/ftx"
	"github.com/tradekit/ftx/pkg/ftxapi"
)

// go run ./cmd/ftxctl place-order --market=BTC-PERP --side=buy --size=0.01 --price=8500 --type=limit
var placeOrderCmd = &cobra.Command{
	Use:          "place-order",
	Short:        "place an order",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		market, err := cmd.Flags().GetString("market")
		if err != nil {
			return err
		}
		if market == "" {
			return fmt.Errorf("market is required")
		}

		side, err := cmd.Flags().GetString("side")
		if err != nil {
			return err
		}

		size, err := cmd.Flags().GetFloat64("size")
		if err != nil {
			return err
		}

		orderType, err := cmd.Flags().GetString("type")
		if err != nil {
			return err
		}

		options := ftx.PlaceOrderOptions{
			Market: market,
			Side:   ftxapi.Side(side),
			Size:   size,
			Type:   ftxapi.OrderType(orderType),
		}

		if cmd.Flags().Changed("price") {
			price, err := cmd.Flags().GetFloat64("price")
			if err != nil {
				return err
			}
			options.Price = &price
		}

		options.ReduceOnly, _ = cmd.Flags().GetBool("reduce-only")
		options.Ioc, _ = cmd.Flags().GetBool("ioc")
		options.PostOnly, _ = cmd.Flags().GetBool("post-only")

		if clientId, _ := cmd.Flags().GetString("client-id"); clientId != "" {
			options.ClientId = &clientId
		} else if genId, _ := cmd.Flags().GetBool("gen-client-id"); genId {
			clientId := uuid.NewString()
			options.ClientId = &clientId
		}

		order, err := client.PlaceOrder(context.Background(), options)
		if err != nil {
			return err
		}

		log.Infof("order placed: %+v", order)
		return nil
	},
}

func init() {
	placeOrderCmd.Flags().String("market", "", "the market name, like BTC-PERP")
	placeOrderCmd.Flags().String("side", "", "buy or sell")
	placeOrderCmd.Flags().Float64("size", 0, "order size")
	placeOrderCmd.Flags().Float64("price", 0, "limit price, omit for market orders")
	placeOrderCmd.Flags().String("type", "market", "order type, limit or market")
	placeOrderCmd.Flags().Bool("reduce-only", false, "the position can only reduce in size if this order is triggered")
	placeOrderCmd.Flags().Bool("ioc", false, "immediate or cancel")
	placeOrderCmd.Flags().Bool("post-only", false, "maker only")
	placeOrderCmd.Flags().String("client-id", "", "client-assigned order id")
	placeOrderCmd.Flags().Bool("gen-client-id", false, "generate a random client order id")

	RootCmd.AddCommand(placeOrderCmd)
}
