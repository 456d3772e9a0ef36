package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/shopspring/decimal"
)

const settingEnrollmentPrice = "enrollment_price"

type settingsStore struct {
	*MYSQLStore
}

// Settings returns an object implementing Settings interface
func (ms *MYSQLStore) Settings() dependency.Settings {
	return &settingsStore{
		MYSQLStore: ms,
	}
}

type setting struct {
	Value string `db:"value"`
}

func (ms *MYSQLStore) GetEnrollmentPrice(ctx context.Context) (decimal.Decimal, bool, error) {
	query := `SELECT value FROM settings WHERE name = :name`
	s, err := QueryNamedOne[setting](ctx, ms.DB(), query, map[string]any{
		"name": settingEnrollmentPrice,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to get enrollment price: %w", err)
	}
	price, err := decimal.NewFromString(s.Value)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("bad enrollment price %q: %w", s.Value, err)
	}
	return price, true, nil
}

func (ms *MYSQLStore) SetEnrollmentPrice(ctx context.Context, price decimal.Decimal) error {
	query := `
	INSERT INTO settings (name, value) VALUES (:name, :value)
	ON DUPLICATE KEY UPDATE value = VALUES(value)
	`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"name":  settingEnrollmentPrice,
		"value": price.StringFixed(2),
	})
	if err != nil {
		return fmt.Errorf("failed to set enrollment price: %w", err)
	}
	return nil
}
