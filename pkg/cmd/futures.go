package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tradekit/ftx/pkg/ftxapi"
)

// go run ./cmd/ftxctl futures [underlying]
var futuresCmd = &cobra.Command{
	Use:          "futures [underlying]",
	Short:        "list the enabled, non-expired futures, optionally for one underlying",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		var futures []ftxapi.Future
		if len(args) == 1 {
			futures, err = client.FuturesByUnderlying(ctx, args[0])
		} else {
			futures, err = client.Futures(ctx)
		}
		if err != nil {
			return err
		}

		for _, future := range futures {
			expiry := "-"
			if future.Expiry != nil {
				expiry = future.Expiry.String()
			}
			log.Infof("%s underlying=%s expiry=%s", future.Name, future.Underlying, expiry)
		}

		return nil
	},
}

// go run ./cmd/ftxctl next-future BTC
var nextFutureCmd = &cobra.Command{
	Use:          "next-future <underlying>",
	Short:        "show the soonest-expiring future of an underlying",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		future, err := client.NextFuture(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(future.Name)
		log.Debugf("future: %+v", future)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(futuresCmd)
	RootCmd.AddCommand(nextFutureCmd)
}
