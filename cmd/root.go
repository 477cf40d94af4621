package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/koinledger/koin/logx"
)

var rootCmd = &cobra.Command{
	Use:   "koind",
	Short: "Koin token ledger daemon",
	Long:  "Command line interface for running and managing a Koin token ledger host.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
