package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/koinledger/koin/config"
	"github.com/koinledger/koin/db"
	"github.com/koinledger/koin/dispatch"
	"github.com/koinledger/koin/events"
	"github.com/koinledger/koin/exception"
	"github.com/koinledger/koin/jsonrpc"
	"github.com/koinledger/koin/ledger"
	"github.com/koinledger/koin/logx"
	"github.com/koinledger/koin/monitoring"
	"github.com/koinledger/koin/store"
	"github.com/koinledger/koin/types"
)

var (
	genesisPath string
	tuningPath  string
	withEvents  bool
)

func init() {
	nodeCmd.Flags().StringVar(&genesisPath, "config", "genesis.yml", "path to genesis.yml")
	nodeCmd.Flags().StringVar(&tuningPath, "tuning", "", "path to optional server.ini")
	nodeCmd.Flags().BoolVar(&withEvents, "events", false, "publish ledger events on the in-process bus")
	rootCmd.AddCommand(nodeCmd)
}

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Run the token ledger host",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNode()
	},
}

func runNode() error {
	cfg, err := config.LoadGenesisConfig(genesisPath)
	if err != nil {
		return err
	}
	tuning, err := config.LoadTuningConfig(tuningPath)
	if err != nil {
		return err
	}

	var hostAddr types.Address
	if cfg.Node.HostAddress != "" {
		hostAddr, err = types.ParseAddress(cfg.Node.HostAddress)
		if err != nil {
			return fmt.Errorf("invalid host address: %w", err)
		}
	}

	monitoring.InitMetrics()

	provider, err := db.NewProvider(cfg.Node.DBBackend, cfg.Node.DataDir)
	if err != nil {
		return err
	}
	stateStore, err := store.NewStateStore(provider)
	if err != nil {
		return err
	}
	defer stateStore.MustClose()

	tokenStore := store.NewTokenStore(stateStore)
	token := ledger.NewToken(tokenStore)
	if withEvents {
		token.SetRecorder(events.NewBusRecorder(events.NewEventBus()))
	}

	if err := applyGenesisAllocs(token, cfg.Allocs); err != nil {
		return err
	}

	dispatcher := dispatch.NewDispatcher(token, hostAddr)
	server := jsonrpc.NewServer(cfg.Node.ListenAddr, dispatcher, token, hostAddr, tuning)

	exception.SafeGoWithPanic("jsonrpc", func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logx.Error("NODE", "JSON-RPC server stopped:", err.Error())
			os.Exit(1)
		}
	})

	if cfg.Node.MetricsAddr != "" {
		exception.SafeGo("metrics", func() {
			mux := http.NewServeMux()
			monitoring.RegisterMetrics(mux)
			if err := http.ListenAndServe(cfg.Node.MetricsAddr, mux); err != nil {
				logx.Error("NODE", "Metrics server stopped:", err.Error())
			}
		})
	}

	logx.Info("NODE", "Token ledger host started on ", cfg.Node.ListenAddr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	grace := time.Duration(tuning.RPC.ShutdownGraceMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logx.Warn("NODE", "Shutdown incomplete:", err.Error())
	}
	logx.Info("NODE", "Token ledger host stopped")
	return nil
}

// applyGenesisAllocs mints the configured initial balances once. The supply
// counter doubles as the first-start marker: a nonzero supply means genesis
// already ran.
func applyGenesisAllocs(token *ledger.Token, allocs []config.GenesisAlloc) error {
	if len(allocs) == 0 {
		return nil
	}
	supply, err := token.TotalSupply()
	if err != nil {
		return err
	}
	if supply > 0 {
		return nil
	}

	for _, alloc := range allocs {
		addr, err := types.ParseAddress(alloc.Address)
		if err != nil {
			return fmt.Errorf("invalid genesis address %s: %w", alloc.Address, err)
		}
		if err := token.Mint(addr, alloc.Amount); err != nil {
			return fmt.Errorf("could not mint genesis allocation for %s: %w", alloc.Address, err)
		}
		logx.Info("NODE", fmt.Sprintf("Genesis mint %d to %s", alloc.Amount, alloc.Address))
	}
	return nil
}
