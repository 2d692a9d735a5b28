package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/cli"
	"github.com/jsamuelsen11/tenant-console/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/tenant-console/internal/platform/config"
	"github.com/jsamuelsen11/tenant-console/internal/platform/httpclient"
	"github.com/jsamuelsen11/tenant-console/internal/platform/logging"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// env is what every subcommand needs, built once in PersistentPreRunE.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	directory ports.TenantDirectory
	printer   *cli.Printer
	closeLog  func() error
}

type rootFlags struct {
	profile   string
	configDir string
	file      string
	output    string
	logFile   string
	directory string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	e := &env{closeLog: func() error { return nil }}

	cmd := &cobra.Command{
		Use:   "tenantctl",
		Short: "Provision and manage tenants from the terminal",
		Long: `tenantctl walks you through creating a tenant in an interactive
wizard and lists, inspects and updates tenants in the directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd, flags)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return e.closeLog()
		},
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.profile, "profile", profile, "configuration profile (local, dev, qa, prod)")
	pf.StringVar(&flags.configDir, "config-dir", "", "directory holding base.yaml and profile overlays")
	pf.StringVarP(&flags.file, "config", "c", "", "personal YAML settings layered over the profile")
	pf.StringVarP(&flags.output, "output", "o", string(cli.FormatTable), "output format: table, json or yaml")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.StringVar(&flags.directory, "directory-url", "", "tenant directory base URL (overrides client.base_url)")

	cmd.AddCommand(
		newWizardCmd(e),
		newTenantsCmd(e),
		newCodeCmd(e),
	)
	return cmd
}

func (e *env) init(cmd *cobra.Command, flags *rootFlags) error {
	if cmd.Name() == "help" || strings.HasPrefix(cmd.CommandPath(), "tenantctl completion") {
		return nil
	}

	format, err := cli.ParseFormat(flags.output)
	if err != nil {
		return err
	}

	opts := []config.Option{config.WithFile(flags.file)}
	if flags.configDir != "" {
		opts = append(opts, config.WithConfigDir(flags.configDir))
	}
	cfg, err := config.Load(flags.profile, opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flags.directory != "" {
		cfg.Client.BaseURL = flags.directory
	}

	var logOut io.Writer = cmd.ErrOrStderr()
	switch {
	case flags.logFile != "":
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logOut = f
		e.closeLog = f.Close
	case cmd.Name() == wizardCmdName:
		// Log lines would tear the alternate screen.
		logOut = io.Discard
	}

	e.cfg = cfg
	e.logger = logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	client := httpclient.New(&cfg.Client, "tenant-directory", nil, e.logger)
	e.directory = acl.NewTenantClient(client, e.logger)
	e.printer = cli.NewPrinter(cmd.OutOrStdout(), format)
	return nil
}
