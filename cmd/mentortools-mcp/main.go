package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"mentortools-mcp/internal/config"
	"mentortools-mcp/internal/filesource"
	"mentortools-mcp/internal/logging"
	"mentortools-mcp/internal/metrics"
	"mentortools-mcp/internal/providers/mentortools"
	"mentortools-mcp/internal/server"
	"mentortools-mcp/internal/sftpclient"
	"mentortools-mcp/internal/tools"
)

type flags struct {
	configPath string
	transport  string
	host       string
	port       int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "Fatal error in main():", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "mentortools-mcp",
		Short:         "MCP server for the Mentortools LMS API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&f.transport, "transport", "", "transport: stdio or http (env TRANSPORT)")
	cmd.Flags().StringVar(&f.host, "host", "", "HTTP listen host (env HOST)")
	cmd.Flags().IntVar(&f.port, "port", 0, "HTTP listen port (env PORT)")
	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("transport") {
		cfg.Transport = f.transport
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = f.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(cmd.ErrOrStderr(), config.Usage)
		}
		return err
	}

	log, sync, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer sync()

	client, err := mentortools.New(mentortools.Options{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  log.WithName("mentortools"),
	})
	if err != nil {
		return err
	}

	files := &filesource.Resolver{Dir: cfg.UploadDir}
	sftpCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		KnownHostsFile:        cfg.SFTPKnownHosts,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
	}
	if sftpCfg.Configured() {
		files.Remote = &sftpclient.Fetcher{Config: sftpCfg}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	registry := tools.New(client, tools.Options{
		Files:   files,
		Metrics: metrics.New(reg),
		Logger:  log.WithName("tools"),
	})
	srv := server.New(cfg, registry, server.Options{Gatherer: reg, Logger: log})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", "transport", cfg.Transport, "tools", len(registry.Specs()),
		"upload_dir", cfg.UploadDir != "", "sftp", sftpCfg.Configured())
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
