// Package service runs the plan provider of one topology together with the
// apis that expose it.
package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dimitarvdimitrov/planwatch/api"
	"github.com/dimitarvdimitrov/planwatch/api/pb"
	"github.com/dimitarvdimitrov/planwatch/log"
	"github.com/dimitarvdimitrov/planwatch/metrics"
	"github.com/dimitarvdimitrov/planwatch/provider"
	"github.com/dimitarvdimitrov/planwatch/statemgr"
	"github.com/dimitarvdimitrov/planwatch/tmaster"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/dnscache"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type Service struct {
	cfg Config

	provider     *provider.Provider
	registry     *prometheus.Registry
	resolver     *dnscache.Resolver
	closeLocator func() error

	grpcServer *grpc.Server
	grpcLis    net.Listener
	httpServer *http.Server
	httpLis    net.Listener
}

// New builds the service and binds its listeners. Nothing is served until Run.
func New(cfg Config) (*Service, error) {
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	locator, closeLocator, err := statemgr.New(cfg.StateManager)
	if err != nil {
		return nil, err
	}

	var resolver *dnscache.Resolver
	if cfg.TMaster.DNSCache {
		resolver = &dnscache.Resolver{}
	}
	client := tmaster.NewHTTPClient(cfg.TMaster.RequestTimeout.Duration, resolver)
	fetcher := tmaster.NewFetcher(locator, client, cfg.TMaster)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	observer, err := metrics.NewProvider(registry, cfg.Topology)
	if err != nil {
		_ = closeLocator()
		return nil, err
	}

	s := &Service{
		cfg:          cfg,
		provider:     provider.New(cfg.Topology, fetcher, observer),
		registry:     registry,
		resolver:     resolver,
		closeLocator: closeLocator,
	}
	if err = s.listen(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Service) listen() error {
	if s.cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", s.cfg.GRPCAddr)
		if err != nil {
			return err
		}
		s.grpcLis = lis
		s.grpcServer = grpc.NewServer()
		pb.RegisterPlanServiceServer(s.grpcServer, api.NewPlanServer(s.provider))
	}

	if s.cfg.HTTPAddr != "" {
		lis, err := net.Listen("tcp", s.cfg.HTTPAddr)
		if err != nil {
			return err
		}
		s.httpLis = lis
		s.httpServer = &http.Server{
			Handler:           api.NewHTTPHandler(s.provider, s.registry),
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}
	return nil
}

func (s *Service) Provider() *provider.Provider {
	return s.provider
}

// GRPCAddr is the address the grpc api listens on, empty if disabled.
func (s *Service) GRPCAddr() string {
	if s.grpcLis == nil {
		return ""
	}
	return s.grpcLis.Addr().String()
}

// HTTPAddr is the address the http api listens on, empty if disabled.
func (s *Service) HTTPAddr() string {
	if s.httpLis == nil {
		return ""
	}
	return s.httpLis.Addr().String()
}

// Run serves the apis and pulls the plan every export interval until ctx is
// done or one of the servers fails.
func (s *Service) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.grpcServer != nil {
		g.Go(func() error {
			log.Infof("serving grpc on %s", s.GRPCAddr())
			return s.grpcServer.Serve(s.grpcLis)
		})
		g.Go(func() error {
			<-ctx.Done()
			s.grpcServer.GracefulStop()
			return nil
		})
	}

	if s.httpServer != nil {
		g.Go(func() error {
			log.Infof("serving http on %s", s.HTTPAddr())
			if err := s.httpServer.Serve(s.httpLis); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return s.httpServer.Shutdown(shutdownCtx)
		})
	}

	if s.resolver != nil {
		g.Go(func() error {
			tmaster.RefreshDNS(ctx, s.resolver, s.cfg.TMaster.DNSRefresh.Duration)
			return nil
		})
	}

	g.Go(func() error {
		s.export(ctx)
		return nil
	})

	err := g.Wait()
	log.Info("stopped serving ", s.cfg.Topology)
	return err
}

// export pulls the plan so the component gauges follow the topology even
// when nobody queries the apis.
func (s *Service) export(ctx context.Context) {
	t := time.NewTicker(s.cfg.Metrics.ExportInterval.Duration)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			names, err := s.provider.ComponentNames(ctx)
			if err != nil {
				log.Warnw("no physical plan to export", log.Topology(s.cfg.Topology), log.Err(err))
				continue
			}
			log.Debugw("exported physical plan", log.Topology(s.cfg.Topology), "components", len(names))
		case <-ctx.Done():
			return
		}
	}
}

// Close releases the listeners and the state manager connection. It is
// safe to call after Run returned.
func (s *Service) Close() error {
	if s.grpcLis != nil {
		_ = s.grpcLis.Close()
	}
	if s.httpLis != nil {
		_ = s.httpLis.Close()
	}
	return s.closeLocator()
}
