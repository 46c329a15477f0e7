package server

import (
	"flag"
	"net/http"

	"github.com/iov-one/lockbox/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind    = "bind"
	flagDebug   = "debug"
	flagMetrics = "metrics"
)

type startArgs struct {
	addr    string
	debug   bool
	metrics string
}

func parseFlags(args []string) (startArgs, error) {
	var res startArgs
	startFlags := flag.NewFlagSet("start", flag.ExitOnError)
	startFlags.StringVar(&res.addr, flagBind, "tcp://localhost:26658", "address server listens on")
	startFlags.BoolVar(&res.debug, flagDebug, false, "call stack returned on error")
	startFlags.StringVar(&res.metrics, flagMetrics, "", "serve prometheus metrics on this address, e.g. localhost:9102")
	err := startFlags.Parse(args)
	return res, err
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(string, log.Logger, bool) (abci.Application, error)

// StartCmd initializes the application and serves it until the process
// receives an interrupt.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	// Generate the app in the proper dir
	app, err := gen(home, logger, flags.debug)
	if err != nil {
		return err
	}

	if flags.metrics != "" {
		go serveMetrics(logger, flags.metrics)
	}

	logger.Info("Starting ABCI app", "bind", flags.addr)
	svr, err := server.NewServer(flags.addr, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "creating listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrState, "starting server: %s", err)
	}

	cmn.TrapSignal(logger, func() {
		// Cleanup
		if err := svr.Stop(); err != nil {
			logger.Error("Cannot stop the server", "err", err)
		}
	})
	// Run forever.
	select {}
}

// serveMetrics exposes the default prometheus registry on /metrics.
func serveMetrics(logger log.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server failed", "err", err)
	}
}
