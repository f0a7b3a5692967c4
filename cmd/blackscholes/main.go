package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/contactkeval/bsm-pricer/internal/driver"
	"github.com/contactkeval/bsm-pricer/internal/logger"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blackscholes",
		Short: "Price a European call and put under Black-Scholes-Merton",
		Long: `blackscholes prompts for the stock price, strike, interest rate,
time to maturity (years) and volatility, one per line on stdin,
then prints the call and put prices.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return driver.New(cmd.InOrStdin(), cmd.OutOrStdout(), nil).Run()
		},
	}
}

func main() {
	logger.SetVerbosity(int(logger.Error))
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
