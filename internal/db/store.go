// Copyright (c) 2026 padre authors
// padre - deterministic password derivation
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/padre/internal/model"
	"github.com/uptrace/bun"
)

// AccountModel maps the `accounts` table for Bun queries.
type AccountModel struct {
	bun.BaseModel `bun:"table:accounts"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Position      int    `bun:"position,notnull"`
	Domain        string `bun:"domain,notnull"`
	Username      string `bun:"username,notnull"`
	Iteration     string `bun:"iteration,notnull"`
	Length        int64  `bun:"length,notnull"`
	Characters    string `bun:"characters,notnull"`
}

func accountModelToModel(a AccountModel) model.Account {
	return model.Account{
		Domain:     a.Domain,
		Username:   a.Username,
		Iteration:  a.Iteration,
		Length:     uint(a.Length),
		Characters: a.Characters,
	}
}

func modelToAccountModel(pos int, a model.Account) AccountModel {
	return AccountModel{
		Position:   pos,
		Domain:     a.Domain,
		Username:   a.Username,
		Iteration:  a.Iteration,
		Length:     int64(a.Length),
		Characters: a.Characters,
	}
}

// Store is the bun-backed account index.
type Store struct {
	bun *bun.DB
}

// List returns every stored account in import order.
func (s *Store) List(ctx context.Context) (model.AccountList, error) {
	var rows []AccountModel
	if err := s.bun.NewSelect().Model(&rows).Order("position ASC", "id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	out := make(model.AccountList, 0, len(rows))
	for _, r := range rows {
		out = append(out, accountModelToModel(r))
	}
	return out, nil
}

// Count returns the number of stored accounts.
func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.bun.NewSelect().Model((*AccountModel)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// ReplaceAll swaps the stored accounts for accounts in one transaction.
func (s *Store) ReplaceAll(ctx context.Context, accounts model.AccountList) error {
	return WithTx(ctx, s.bun, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*AccountModel)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return fmt.Errorf("clear accounts: %w", err)
		}
		if len(accounts) == 0 {
			return nil
		}
		rows := make([]AccountModel, 0, len(accounts))
		for i, a := range accounts {
			rows = append(rows, modelToAccountModel(i, a))
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert accounts: %w", err)
		}
		return nil
	})
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.bun.Close()
}
