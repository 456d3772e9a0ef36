package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/jekabolt/academy-manager/internal/dto"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	EnrollmentConfirmation = "enrollment_confirmation.gohtml"
	PaymentReceived        = "payment_received.gohtml"
)

// templateSubjects maps template names to subjects, %s is the academy name.
var templateSubjects = map[string]string{
	EnrollmentConfirmation: "%s: enrollment received",
	PaymentReceived:        "%s: payment received",
}

// QueueEnrollmentConfirmation renders the enrollment confirmation and queues it for the tutor.
func (m *Mailer) QueueEnrollmentConfirmation(ctx context.Context, form *entity.EnrollmentForm, res *entity.EnrollmentResult, amount decimal.Decimal) (int, error) {
	if form == nil || res == nil {
		return 0, fmt.Errorf("%w: enrollment details are required", gerr.ErrBadMailRequest)
	}
	data := dto.EnrollmentToConfirmation(m.c.AcademyName, form, res, amount)
	return m.queue(ctx, form.Tutor.Email, form.Tutor.Name, EnrollmentConfirmation, data, entity.MailMetadata{
		PlayerIds: res.PendingPlayerIds,
		FamilyId:  res.FamilyId,
		PaymentId: res.PaymentId,
	})
}

// QueuePaymentReceived queues a receipt for a payment the matcher linked.
func (m *Mailer) QueuePaymentReceived(ctx context.Context, to, name string, amount decimal.Decimal, res *entity.ReconcileResult) (int, error) {
	if res == nil || res.PaymentId == 0 {
		return 0, fmt.Errorf("%w: payment id is required", gerr.ErrBadMailRequest)
	}
	data := dto.ReconcileToPaymentReceived(m.c.AcademyName, name, amount, res)
	return m.queue(ctx, to, name, PaymentReceived, data, entity.MailMetadata{
		PlayerIds: res.PendingPlayerIds,
		PaymentId: res.PaymentId,
	})
}

func (m *Mailer) queue(ctx context.Context, to, name, tn string, data any, md entity.MailMetadata) (int, error) {
	to = strings.TrimSpace(to)
	if !govalidator.IsEmail(to) {
		return 0, fmt.Errorf("%w: invalid recipient %q", gerr.ErrBadMailRequest, to)
	}

	subject, html, err := m.render(tn, data)
	if err != nil {
		return 0, err
	}

	id, err := m.mailRepository.AddMail(ctx, &entity.EmailQueueItemInsert{
		FromEmail: m.c.FromEmail,
		FromName:  m.c.FromName,
		ToEmail:   to,
		ToName:    strings.TrimSpace(name),
		ReplyTo:   m.c.ReplyTo,
		Subject:   subject,
		Html:      html,
		Template:  strings.TrimSuffix(tn, ".gohtml"),
		Metadata:  md,
	})
	if err != nil {
		return 0, fmt.Errorf("error inserting email: %w", err)
	}
	return id, nil
}
