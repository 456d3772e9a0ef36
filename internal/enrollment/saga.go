package enrollment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
)

// step is one write of the enrollment saga together with its compensation.
type step interface {
	name() string
	do(ctx context.Context) error
	// undo removes whatever do managed to write, including a partial write.
	undo(ctx context.Context) error
}

// runSaga executes steps in order. When a step fails every step that ran,
// the failing one included, is compensated in reverse order and the original
// error is returned.
func runSaga(ctx context.Context, steps []step) error {
	for i, s := range steps {
		if err := s.do(ctx); err != nil {
			compensate(ctx, steps[:i+1])
			return fmt.Errorf("%s: %w", s.name(), err)
		}
	}
	return nil
}

func compensate(ctx context.Context, ran []step) {
	ctx = context.WithoutCancel(ctx)
	for i := len(ran) - 1; i >= 0; i-- {
		if err := ran[i].undo(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't compensate enrollment step",
				slog.String("step", ran[i].name()),
				slog.String("err", err.Error()),
			)
		}
	}
}

type familyStep struct {
	rep  dependency.Repository
	form *entity.EnrollmentForm
	res  *entity.EnrollmentResult
}

func (s *familyStep) name() string { return "family" }

func (s *familyStep) do(ctx context.Context) error {
	cedula := strings.TrimSpace(s.form.Tutor.Cedula)
	key := NameKey(s.form.Tutor.Name)

	var (
		f   *entity.Family
		err error
	)
	if cedula != "" {
		f, err = s.rep.Family().GetFamilyByTutorCedula(ctx, cedula)
	} else {
		f, err = s.rep.Family().GetFamilyByTutorNameKey(ctx, key)
	}
	switch {
	case err == nil:
		s.res.FamilyId = f.Id
		return nil
	case !errors.Is(err, gerr.ErrNotFound):
		return err
	}

	id, err := s.rep.Family().AddFamily(ctx, &entity.FamilyInsert{
		TutorName:    strings.TrimSpace(s.form.Tutor.Name),
		TutorNameKey: key,
		TutorCedula:  nullString(cedula),
		TutorEmail:   strings.TrimSpace(s.form.Tutor.Email),
		TutorPhone:   strings.TrimSpace(s.form.Tutor.Phone),
	})
	if err != nil {
		if cedula == "" || !s.rep.IsErrUniqueViolation(err) {
			return err
		}
		// another enrollment inserted the same tutor first
		f, ferr := s.rep.Family().GetFamilyByTutorCedula(ctx, cedula)
		if ferr != nil {
			return fmt.Errorf("can't reuse family after duplicate insert: %w", errors.Join(err, ferr))
		}
		s.res.FamilyId = f.Id
		return nil
	}
	s.res.FamilyId = id
	s.res.FamilyCreated = true
	return nil
}

func (s *familyStep) undo(ctx context.Context) error {
	if !s.res.FamilyCreated {
		return nil
	}
	return s.rep.Family().DeleteFamilyById(ctx, s.res.FamilyId)
}

type playersStep struct {
	rep  dependency.Repository
	form *entity.EnrollmentForm
	res  *entity.EnrollmentResult
}

func (s *playersStep) name() string { return "pending players" }

func (s *playersStep) do(ctx context.Context) error {
	for _, p := range s.form.Players {
		bd, err := p.ParsedBirthDate()
		if err != nil {
			return fmt.Errorf("bad birth date %q: %w", p.BirthDate, gerr.ErrValidation)
		}
		ppi := &entity.PendingPlayerInsert{
			FirstName: strings.TrimSpace(p.FirstName),
			LastName:  strings.TrimSpace(p.LastName),
			BirthDate: bd,
			Gender:    p.Gender,
			Cedula:    nullString(strings.TrimSpace(p.Cedula)),
			Category:  p.Category,
		}
		if s.res.FamilyId != 0 {
			ppi.FamilyId = sql.NullInt32{Int32: int32(s.res.FamilyId), Valid: true}
		} else {
			t := s.form.Tutor
			ppi.TutorName = nullString(strings.TrimSpace(t.Name))
			ppi.TutorCedula = nullString(strings.TrimSpace(t.Cedula))
			ppi.TutorEmail = nullString(strings.TrimSpace(t.Email))
			ppi.TutorPhone = nullString(strings.TrimSpace(t.Phone))
		}
		id, err := s.rep.PendingPlayer().AddPendingPlayer(ctx, ppi)
		if err != nil {
			return err
		}
		s.res.PendingPlayerIds = append(s.res.PendingPlayerIds, id)
	}
	return nil
}

func (s *playersStep) undo(ctx context.Context) error {
	var errs []error
	for i := len(s.res.PendingPlayerIds) - 1; i >= 0; i-- {
		id := s.res.PendingPlayerIds[i]
		if err := s.rep.PendingPlayer().DeletePendingPlayerById(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("pending player %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

type paymentStep struct {
	rep dependency.Repository
	pc  *entity.PaymentConfirmation
	res *entity.EnrollmentResult
}

func (s *paymentStep) name() string { return "payment" }

func (s *paymentStep) do(ctx context.Context) error {
	events := []*entity.PaymentEventInsert{
		{
			Kind:    entity.PaymentEventGatewayConfirmed,
			Message: ConfirmationNote(s.pc),
			Exact:   true,
		},
		entity.LinkEvent(s.res.PendingPlayerIds, true, ""),
	}
	id, err := s.rep.Payment().AddPayment(ctx, &entity.PaymentInsert{
		Amount:             s.pc.Amount,
		Method:             s.pc.Method,
		Status:             entity.PaymentApproved,
		OperationReference: nullString(strings.TrimSpace(s.pc.Reference)),
	}, events)
	if id != 0 {
		s.res.PaymentId = id
	}
	if err != nil {
		if s.rep.IsErrUniqueViolation(err) {
			return fmt.Errorf("%w: %w", gerr.ErrDuplicateOperation, err)
		}
		return err
	}
	return nil
}

func (s *paymentStep) undo(ctx context.Context) error {
	if s.res.PaymentId == 0 {
		return nil
	}
	return s.rep.Payment().DeletePaymentById(ctx, s.res.PaymentId)
}

// ConfirmationNote is the notes line describing how a payment was confirmed.
func ConfirmationNote(pc *entity.PaymentConfirmation) string {
	if pc.Reference == "" {
		return fmt.Sprintf("Payment confirmed via %s", pc.Method)
	}
	return fmt.Sprintf("Payment confirmed via %s, reference %s", pc.Method, pc.Reference)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
