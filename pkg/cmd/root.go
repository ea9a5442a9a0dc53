package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tradekit/ftx/pkg/ftx"
)

var RootCmd = &cobra.Command{
	Use:   "ftxctl",
	Short: "ftxctl queries the FTX REST API",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dotenvFile, err := cmd.Flags().GetString("dotenv")
		if err != nil {
			return err
		}

		if _, err := os.Stat(dotenvFile); err == nil {
			if err := godotenv.Load(dotenvFile); err != nil {
				log.WithError(err).Warnf("can not load dotenv file %s", dotenvFile)
			}
		}

		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetLevel(log.DebugLevel)
		}

		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("dotenv", ".env", "the dotenv file to load")
	RootCmd.PersistentFlags().String("endpoint", "", "the FTX REST endpoint, empty means production")
	RootCmd.PersistentFlags().String("subaccount", "", "the subaccount name")
}

// newClient builds the api client from the command flags and the FTX_* env
// vars bound through viper.
func newClient(cmd *cobra.Command) (*ftx.Client, error) {
	endpoint, err := cmd.Flags().GetString("endpoint")
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		endpoint = viper.GetString("ftx-endpoint")
	}

	subaccount, err := cmd.Flags().GetString("subaccount")
	if err != nil {
		return nil, err
	}
	if subaccount == "" {
		subaccount = viper.GetString("ftx-subaccount")
	}

	return ftx.New(ftx.Config{
		Endpoint:   endpoint,
		Key:        viper.GetString("ftx-api-key"),
		Secret:     viper.GetString("ftx-api-secret"),
		Subaccount: subaccount,
	})
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, FTX_API_KEY and FTX_API_SECRET
	// come from the environment or the dotenv file.
	viper.AutomaticEnv()

	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
