package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hueyhuilonghan/event-driven-backtester/config"
	"github.com/hueyhuilonghan/event-driven-backtester/engine"
	"github.com/hueyhuilonghan/event-driven-backtester/logging"
	"github.com/hueyhuilonghan/event-driven-backtester/statistics"
)

func main() {
	root := &cobra.Command{
		Use:   "backtester",
		Short: "Event-driven backtesting harness for trading strategies",
		Long: "Replays historical bars through a simulated market, routes signals " +
			"through position sizing and risk checks, simulates fills and tracks " +
			"portfolio equity, Sharpe ratio and drawdown.",
		SilenceUsage: true,
	}
	root.AddCommand(runCommand(), reportCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a trading session from a config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log)
			session, err := engine.NewFromConfig(cfg, logger)
			if err != nil {
				logger.Error().Err(err).Msg("could not construct session")
				return err
			}
			if _, err = session.StartTrading(); err != nil {
				logger.Error().Err(err).Msg("session failed")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "backtester.yaml", "path to the session config file")
	return cmd
}

func reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <statistics.json>",
		Short: "Reload a saved statistics blob and print the headline results",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := statistics.Load(args[0])
			if err != nil {
				return err
			}
			results := c.Results()
			fmt.Printf("Samples:          %d\n", len(c.Equity))
			fmt.Printf("Sharpe Ratio:     %.4f\n", results.Sharpe)
			fmt.Printf("Max Drawdown:     %s\n", results.MaxDrawdown)
			fmt.Printf("Max Drawdown Pct: %.4f%%\n", results.MaxDrawdownPct)
			return nil
		},
	}
}
