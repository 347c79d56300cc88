package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukydev/bus-portal/internal/config"
	"github.com/ukydev/bus-portal/internal/logging"
	"github.com/ukydev/bus-portal/internal/models"
	"github.com/ukydev/bus-portal/internal/server"
	"github.com/ukydev/bus-portal/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "busportal: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "busportal",
		Short:         "Public bus portal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newServeCmd(),
		newRenderCmd(),
		newStatusesCmd(),
	)
	return cmd
}

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the public site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := cfg.Server.Validate(); err != nil {
					return fmt.Errorf("--port: %w", err)
				}
			}

			logger := logging.New(cfg.Log)
			logger.WithField("addr", cfg.Server.Addr()).Info("Starting bus portal")
			return server.New(cfg, logger).Serve(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides PORT)")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Write a page as a complete HTML document to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, ok := web.LookupPage(args[0])
			if !ok {
				return fmt.Errorf("unknown page %q (known: %s)", args[0], strings.Join(web.PageNames(), ", "))
			}
			if !cmd.Flags().Changed("title") {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				title = cfg.Site.Title
			}
			_, err := io.WriteString(cmd.OutOrStdout(), string(page.FullDocument(title)))
			return err
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Site title (overrides SITE_TITLE)")
	return cmd
}

func newStatusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List bus and service statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "bus:")
			for _, s := range models.BusStatuses() {
				fmt.Fprintf(out, "  %s\n", s)
			}
			fmt.Fprintln(out, "service:")
			for _, s := range models.ServiceStatuses() {
				fmt.Fprintf(out, "  %s\n", s)
			}
			return nil
		},
	}
}
