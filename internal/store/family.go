package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
)

type familyStore struct {
	*MYSQLStore
}

// Family returns an object implementing family interface
func (ms *MYSQLStore) Family() dependency.Family {
	return &familyStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) GetFamilyByTutorCedula(ctx context.Context, cedula string) (*entity.Family, error) {
	query := `SELECT * FROM family WHERE tutor_cedula = :tutorCedula`
	f, err := QueryNamedOne[entity.Family](ctx, ms.DB(), query, map[string]any{
		"tutorCedula": cedula,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("family with tutor cedula %q: %w", cedula, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get family by tutor cedula: %w", err)
	}
	return &f, nil
}

func (ms *MYSQLStore) GetFamilyByTutorNameKey(ctx context.Context, nameKey string) (*entity.Family, error) {
	query := `SELECT * FROM family WHERE tutor_name_key = :tutorNameKey ORDER BY id ASC LIMIT 1`
	f, err := QueryNamedOne[entity.Family](ctx, ms.DB(), query, map[string]any{
		"tutorNameKey": nameKey,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("family with tutor name %q: %w", nameKey, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get family by tutor name: %w", err)
	}
	return &f, nil
}

func (ms *MYSQLStore) AddFamily(ctx context.Context, f *entity.FamilyInsert) (int, error) {
	query := `
	INSERT INTO family
		(created_at, tutor_name, tutor_name_key, tutor_cedula, tutor_email, tutor_phone)
	VALUES
		(:createdAt, :tutorName, :tutorNameKey, :tutorCedula, :tutorEmail, :tutorPhone)
	`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"createdAt":    ms.Now(),
		"tutorName":    f.TutorName,
		"tutorNameKey": f.TutorNameKey,
		"tutorCedula":  f.TutorCedula,
		"tutorEmail":   f.TutorEmail,
		"tutorPhone":   f.TutorPhone,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add family: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) DeleteFamilyById(ctx context.Context, id int) error {
	query := `DELETE FROM family WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete family: %w", err)
	}
	return nil
}
