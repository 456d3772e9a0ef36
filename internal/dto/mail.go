package dto

import (
	"fmt"
	"strings"

	"github.com/jekabolt/academy-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// MailPlayer is one player line rendered in enrollment mails.
type MailPlayer struct {
	Name     string
	Category string
}

// EnrollmentConfirmation is the data of the enrollment_confirmation template.
type EnrollmentConfirmation struct {
	Preheader     string
	AcademyName   string
	TutorName     string
	Players       []MailPlayer
	Amount        string
	PaymentId     int
	FamilyCreated bool
	Offline       bool
}

// PaymentReceived is the data of the payment_received template.
type PaymentReceived struct {
	Preheader   string
	AcademyName string
	Name        string
	Amount      string
	PaymentId   int
	PlayerCount int
}

func EnrollmentToConfirmation(academy string, form *entity.EnrollmentForm, res *entity.EnrollmentResult, amount decimal.Decimal) *EnrollmentConfirmation {
	players := make([]MailPlayer, 0, len(form.Players))
	for _, p := range form.Players {
		players = append(players, MailPlayer{
			Name:     strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName)),
			Category: p.Category,
		})
	}
	return &EnrollmentConfirmation{
		Preheader:     strings.ToUpper(fmt.Sprintf("your %s enrollment has been received", academy)),
		AcademyName:   academy,
		TutorName:     form.Tutor.Name,
		Players:       players,
		Amount:        amount.StringFixed(2),
		PaymentId:     res.PaymentId,
		FamilyCreated: res.FamilyCreated,
		Offline:       res.PaymentId == 0,
	}
}

func ReconcileToPaymentReceived(academy, name string, amount decimal.Decimal, res *entity.ReconcileResult) *PaymentReceived {
	return &PaymentReceived{
		Preheader:   strings.ToUpper(fmt.Sprintf("your %s payment has been received", academy)),
		AcademyName: academy,
		Name:        name,
		Amount:      amount.StringFixed(2),
		PaymentId:   res.PaymentId,
		PlayerCount: len(res.PendingPlayerIds),
	}
}
