// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/padre/internal/accountdb"
	"github.com/toeirei/padre/internal/charset"
	"github.com/toeirei/padre/internal/derive"
	"github.com/toeirei/padre/internal/errs"
	"github.com/toeirei/padre/internal/i18n"
	"github.com/toeirei/padre/internal/logging"
	"github.com/toeirei/padre/internal/model"
	"github.com/toeirei/padre/internal/security"
)

// runDerive is the root command: determine the account, resolve its charset,
// read the master secret and emit the password.
func (a *app) runDerive(cmd *cobra.Command, args []string) error {
	account, err := a.determineAccount(cmd, args)
	if err != nil {
		return err
	}
	if account.Length == 0 {
		return fmt.Errorf("%s: %w", i18n.T("error.length", 0), errs.ErrInvalidArgument)
	}
	if err := account.Validate(); err != nil {
		return err
	}

	// Resolve before asking for the secret so a bad specification never
	// costs the user a prompt.
	cs, err := charset.Resolve(account.Characters)
	if err != nil {
		return err
	}
	logging.Debugf("deriving %s: length %d, %d characters", account, account.Length, cs.Len())

	var password string
	err = security.WithSecret(
		func() (security.Secret, error) { return a.deps.readSecret(i18n.T("prompt.secret")) },
		func(s security.Secret) error {
			return s.Use(func(b []byte) error {
				var derr error
				password, derr = derive.Derive(b, account.Domain, account.Username, account.Iteration, account.Length, cs)
				return derr
			})
		},
	)
	if err != nil {
		return err
	}

	if a.cfg.Clipboard {
		if err := a.deps.copy(password); err != nil {
			return errors.New(i18n.T("error.clipboard", err))
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.copied"))
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), password)
	return err
}

// determineAccount builds the account from two arguments, picks it from the
// flat-file database named by one argument, or from the account store.
func (a *app) determineAccount(cmd *cobra.Command, args []string) (model.Account, error) {
	switch len(args) {
	case 2:
		return model.Account{
			Domain:     args[0],
			Username:   args[1],
			Iteration:  a.cfg.Defaults.Iteration,
			Characters: a.cfg.Defaults.Characters,
			Length:     a.cfg.Defaults.Length,
		}, nil
	case 1:
		accounts, err := accountdb.Load(args[0])
		if err != nil {
			return model.Account{}, err
		}
		return a.chooseAccount(accounts)
	case 0:
		accounts, err := a.storedAccounts(cmd)
		if err != nil {
			return model.Account{}, err
		}
		return a.chooseAccount(accounts)
	default:
		return model.Account{}, fmt.Errorf("%s: %w", i18n.T("error.args", len(args)), errs.ErrInvalidArgument)
	}
}

func (a *app) storedAccounts(cmd *cobra.Command) (model.AccountList, error) {
	st, err := a.openStore(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer closeStore(st)
	accounts, err := st.List(cmd.Context())
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, accountdb.ErrEmptyDatabase
	}
	return accounts, nil
}

// chooseAccount selects one of accounts: a single one without asking, more
// through the menu.
func (a *app) chooseAccount(accounts model.AccountList) (model.Account, error) {
	switch len(accounts) {
	case 0:
		return model.Account{}, accountdb.ErrEmptyDatabase
	case 1:
		logging.Warnf("%s", i18n.T("cli.auto_selected", accounts[0].String()))
		return accounts[0], nil
	}
	i, err := a.deps.choose(accounts)
	if err != nil {
		return model.Account{}, err
	}
	if i < 0 || i >= len(accounts) {
		return model.Account{}, fmt.Errorf("menu returned index %d of %d: %w", i, len(accounts), errs.ErrInvalidArgument)
	}
	return accounts[i], nil
}
