// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/padre/internal/accountdb"
	"github.com/toeirei/padre/internal/charset"
	"github.com/toeirei/padre/internal/config"
	"github.com/toeirei/padre/internal/i18n"
	"github.com/toeirei/padre/internal/logging"
	"github.com/toeirei/padre/internal/model"
)

// listCmd prints the accounts of a flat file, or of the store when no file
// is given.
func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [database]",
		Short: i18n.T("cli.list.short"),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				accounts model.AccountList
				err      error
			)
			if len(args) == 1 {
				accounts, err = accountdb.Load(args[0])
			} else {
				accounts, err = a.storedAccounts(cmd)
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, i18n.T("cli.list.header"))
			for _, acc := range accounts {
				chars := acc.Characters
				if chars == "" {
					chars = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", acc, acc.Iteration, acc.Length, chars)
			}
			return tw.Flush()
		},
	}
}

// importCmd replaces the store's accounts with those of a flat file.
func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: i18n.T("cli.import.short"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := accountdb.Load(args[0])
			if err != nil {
				return err
			}
			for _, acc := range accounts {
				if err := acc.Validate(); err != nil {
					return err
				}
			}

			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(st)
			if err := st.ReplaceAll(cmd.Context(), accounts); err != nil {
				return err
			}
			logging.Infof("imported %d accounts from %s", len(accounts), args[0])
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.imported", len(accounts)))
			return nil
		},
	}
}

// exportCmd writes the store as a flat file, to stdout when no file is given.
func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: i18n.T("cli.export.short"),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := a.storedAccounts(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 || args[0] == accountdb.Stdin {
				return accountdb.Format(cmd.OutOrStdout(), accounts)
			}
			if err := accountdb.Save(args[0], accounts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.exported", len(accounts), args[0]))
			return nil
		},
	}
}

// charsetCmd prints the alphabet a specification resolves to, or the known
// classes when called without one.
func (a *app) charsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charset [spec]",
		Short: i18n.T("cli.charset.short"),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, i18n.T("cli.charset.classes"))
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, name := range charset.ClassNames() {
					fmt.Fprintf(tw, "  %s\t%s\n", name, charset.MustResolve(name))
				}
				return tw.Flush()
			}
			cs, err := charset.Resolve(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(cs))
			return err
		},
	}
}

// configCmd groups configuration file helpers.
func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("cli.config.short"),
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: i18n.T("cli.config_init.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&a.cfg, system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.config_written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, i18n.T("cli.flag.system"))

	cmd.AddCommand(initCmd)
	return cmd
}

// debugCmd dumps what padre would run with.
func (a *app) debugCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "debug",
		Short:  i18n.T("cli.debug.short"),
		Args:   cobra.NoArgs,
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- PADRE DEBUG ---")
			fmt.Fprintf(out, "version: %s\n", compositeVersion())
			fmt.Fprintf(out, "language: %s\n", i18n.GetLang())

			fmt.Fprintln(out, "-- config --")
			b, err := json.MarshalIndent(a.cfg, "", "  ")
			if err != nil {
				logging.Errorf("could not marshal config: %v", err)
			} else {
				fmt.Fprintln(out, string(b))
			}

			fmt.Fprintln(out, "-- locales --")
			locales := i18n.GetAvailableLocales()
			codes := make([]string, 0, len(locales))
			for code := range locales {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				fmt.Fprintf(out, "%s: %s\n", code, locales[code])
			}

			fmt.Fprintln(out, "-- store --")
			a.printStoreSize(cmd)

			fmt.Fprintln(out, "-- env --")
			var env []string
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "PADRE_") {
					env = append(env, e)
				}
			}
			sort.Strings(env)
			for _, e := range env {
				fmt.Fprintln(out, e)
			}

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s=%s (changed=%t)\n", f.Name, f.Value, f.Changed)
			})
		},
	}
}

func (a *app) printStoreSize(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "type: %s\n", a.cfg.Database.Type)
	st, err := a.openStore(cmd.Context())
	if err != nil {
		fmt.Fprintf(out, "unavailable: %v\n", err)
		return
	}
	defer closeStore(st)
	n, err := st.Count(cmd.Context())
	if err != nil {
		fmt.Fprintf(out, "unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(out, "accounts: %d\n", n)
}
