package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/nikmy/intervald/internal/api"
	"github.com/nikmy/intervald/internal/intervals"
	"github.com/nikmy/intervald/internal/metrics"
	"github.com/nikmy/intervald/internal/server"
	"github.com/nikmy/intervald/pkg/errors"
	"github.com/nikmy/intervald/pkg/logger"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	context.AfterFunc(ctx, func() {
		log.Infof("graceful shutdown...")
	})

	index := intervals.New()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rec, err := metrics.New(reg, index)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init metrics"))
	}

	group, ctx := errgroup.WithContext(ctx)

	tcp := server.New(cfg.Server, log, index, rec)
	group.Go(func() error {
		return tcp.ListenAndServe(ctx)
	})

	if cfg.Admin.Enabled() {
		admin := api.NewServer(cfg.Admin, log, index, reg)
		group.Go(func() error {
			return admin.Serve(ctx)
		})
	}

	err = group.Wait()
	if err != nil {
		log.Panic(err)
	}
}
