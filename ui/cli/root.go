// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/padre/internal/config"
	"github.com/toeirei/padre/internal/db"
	"github.com/toeirei/padre/internal/i18n"
	"github.com/toeirei/padre/internal/logging"
	"github.com/toeirei/padre/internal/model"
	"github.com/toeirei/padre/internal/prompt"
	"github.com/toeirei/padre/internal/security"
	"github.com/toeirei/padre/internal/tui"
)

// accountStore is the part of *db.Store the commands need.
type accountStore interface {
	List(ctx context.Context) (model.AccountList, error)
	Count(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, accounts model.AccountList) error
	Close() error
}

// deps are the side effects of the commands. Tests replace them.
type deps struct {
	readSecret func(label string) (security.Secret, error)
	choose     func(accounts model.AccountList) (int, error)
	copy       func(text string) error
	openStore  func(ctx context.Context, c config.Database) (accountStore, error)
}

func defaultDeps() *deps {
	return &deps{
		readSecret: prompt.NewReader().ReadSecret,
		choose:     tui.SelectAccount,
		copy:       clipboard.WriteAll,
		openStore: func(ctx context.Context, c config.Database) (accountStore, error) {
			st, err := db.New(ctx, c.Type, c.Dsn)
			if err != nil {
				return nil, err
			}
			return st, nil
		},
	}
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"defaults.length":     "length",
	"defaults.iteration":  "iteration",
	"defaults.characters": "chars",
	"language":            "lang",
	"clipboard":           "clip",
}

// app carries the loaded configuration from PersistentPreRunE to the command
// that runs.
type app struct {
	deps    *deps
	cfg     config.Config
	verbose bool
}

// Execute runs the CLI entrypoint. Failures are reported on stderr in the
// configured language; the returned error only tells main to exit non-zero.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), describe(err))
		return err
	}
	return nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDeps())
}

func newRootCmd(d *deps) *cobra.Command {
	a := &app{deps: d}

	// Help texts are rendered before any config is read, so they use the
	// language from the environment.
	i18n.Init(envLanguage())

	cmd := &cobra.Command{
		Use:           "padre [flags] [<domain> <username> | <database>]",
		Short:         i18n.T("cli.root.short"),
		Long:          i18n.T("cli.root.long"),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDerive(cmd, args)
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, i18n.T("cli.flag.verbose"))
	cmd.PersistentFlags().String("config", "", i18n.T("cli.flag.config"))
	cmd.PersistentFlags().String("lang", "en", i18n.T("cli.flag.lang"))

	cmd.Flags().UintP("length", "l", 64, i18n.T("cli.flag.length"))
	cmd.Flags().StringP("iteration", "n", "0", i18n.T("cli.flag.iteration"))
	cmd.Flags().StringP("chars", "c", "", i18n.T("cli.flag.chars"))
	cmd.Flags().Bool("clip", false, i18n.T("cli.flag.clip"))
	cmd.Flags().Bool("version", false, i18n.T("cli.flag.version"))

	cmd.AddCommand(
		a.listCmd(),
		a.importCmd(),
		a.exportCmd(),
		a.charsetCmd(),
		a.configCmd(),
		a.debugCmd(),
		versionCmd(),
	)
	return cmd
}

// setup loads the configuration for the command about to run.
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetDebug(a.verbose)

	configFile, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}
	a.cfg, err = config.LoadConfig[config.Config](cmd, config.DefaultValues(), flagKeys, configFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	i18n.Init(a.cfg.Language)
	logging.Debugf("config loaded: language=%s database=%s", a.cfg.Language, a.cfg.Database.Type)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid silently running on defaults.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func envLanguage() string {
	if lang := os.Getenv("PADRE_LANGUAGE"); lang != "" {
		return lang
	}
	return "en"
}

func (a *app) openStore(ctx context.Context) (accountStore, error) {
	logging.Debugf("opening %s account store", a.cfg.Database.Type)
	return a.deps.openStore(ctx, a.cfg.Database)
}

func closeStore(st io.Closer) {
	if err := st.Close(); err != nil {
		logging.Warnf("closing account store: %v", err)
	}
}
