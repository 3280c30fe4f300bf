package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dimitarvdimitrov/planwatch/api"
	"github.com/dimitarvdimitrov/planwatch/log"
	"github.com/dimitarvdimitrov/planwatch/plan"
	"github.com/dimitarvdimitrov/planwatch/provider"
	"github.com/dimitarvdimitrov/planwatch/service"
	"github.com/dimitarvdimitrov/planwatch/statemgr"
	"github.com/dimitarvdimitrov/planwatch/tmaster"
	"github.com/golang/protobuf/jsonpb"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "planwatch",
		Short:         "Serve the physical plan of a topology from its topology master",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newFetchCmd(), newNamesCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <config>",
		Short: "Serve the plan over grpc and http",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := service.LoadConfig(args[0])
			if err != nil {
				return err
			}

			svc, err := service.New(cfg)
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			defer svc.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			handleOsSignals(ctx, cancel)

			log.Infof("watching the physical plan of %s", cfg.Topology)
			err = svc.Run(ctx)
			log.Info("stopping planwatch...")
			return err
		},
	}
}

func newFetchCmd() *cobra.Command {
	var (
		role    string
		asJSON  bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "fetch <config>",
		Short: "Fetch the plan once, straight from the topology master",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := plan.ParseRole(role)
			if err != nil {
				return err
			}
			cfg, err := service.LoadConfig(args[0])
			if err != nil {
				return err
			}
			if err = log.SetLevel(cfg.LogLevel); err != nil {
				return err
			}

			locator, closeLocator, err := statemgr.New(cfg.StateManager)
			if err != nil {
				return err
			}
			defer closeLocator()

			fetcher := tmaster.NewFetcher(locator, nil, cfg.TMaster)
			p := provider.New(cfg.Topology, fetcher, nil)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			s, err := p.Current(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				m := jsonpb.Marshaler{Indent: "  "}
				if err = m.Marshal(cmd.OutOrStdout(), s.Plan()); err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout())
				return err
			}
			names, err := s.Names(r)
			if err != nil {
				return err
			}
			return printNames(cmd.OutOrStdout(), names)
		},
	}
	cmd.Flags().StringVar(&role, "role", "all", "components to list: all, spouts or bolts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the whole plan as json")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")
	return cmd
}

func newNamesCmd() *cobra.Command {
	var (
		addr    string
		role    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Ask a running planwatch for component names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := plan.ParseRole(role)
			if err != nil {
				return err
			}

			c, err := api.NewClient(addr)
			if err != nil {
				return err
			}
			defer c.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			names, stale, err := c.Names(ctx, r)
			if err != nil {
				return err
			}
			if stale {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: the topology master is unreachable, names come from a cached plan")
			}
			return printNames(cmd.OutOrStdout(), names)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:7070", "grpc address of planwatch")
	cmd.Flags().StringVar(&role, "role", "all", "components to list: all, spouts or bolts")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "give up after this long")
	return cmd
}

func printNames(w io.Writer, names []string) error {
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
