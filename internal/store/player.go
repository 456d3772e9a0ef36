package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
)

type pendingPlayerStore struct {
	*MYSQLStore
}

// PendingPlayer returns an object implementing pending player interface
func (ms *MYSQLStore) PendingPlayer() dependency.PendingPlayer {
	return &pendingPlayerStore{
		MYSQLStore: ms,
	}
}

func (ms *MYSQLStore) AddPendingPlayer(ctx context.Context, pp *entity.PendingPlayerInsert) (int, error) {
	query := `
	INSERT INTO pending_player
		(created_at, family_id, first_name, last_name, birth_date, gender, cedula, category,
		tutor_name, tutor_cedula, tutor_email, tutor_phone)
	VALUES
		(:createdAt, :familyId, :firstName, :lastName, :birthDate, :gender, :cedula, :category,
		:tutorName, :tutorCedula, :tutorEmail, :tutorPhone)
	`
	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"createdAt":   ms.Now(),
		"familyId":    pp.FamilyId,
		"firstName":   pp.FirstName,
		"lastName":    pp.LastName,
		"birthDate":   pp.BirthDate,
		"gender":      pp.Gender,
		"cedula":      pp.Cedula,
		"category":    pp.Category,
		"tutorName":   pp.TutorName,
		"tutorCedula": pp.TutorCedula,
		"tutorEmail":  pp.TutorEmail,
		"tutorPhone":  pp.TutorPhone,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add pending player: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) DeletePendingPlayerById(ctx context.Context, id int) error {
	query := `DELETE FROM pending_player WHERE id = :id`
	err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		return fmt.Errorf("failed to delete pending player: %w", err)
	}
	return nil
}

func (ms *MYSQLStore) GetPendingPlayersCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.PendingPlayer, error) {
	query := `
	SELECT * FROM pending_player
	WHERE created_at >= :from AND created_at <= :to
	ORDER BY created_at DESC, id DESC
	`
	pps, err := QueryListNamed[entity.PendingPlayer](ctx, ms.DB(), query, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending players: %w", err)
	}
	return pps, nil
}
