package dependency

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/jekabolt/academy-manager/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Family interface {
		// GetFamilyByTutorCedula returns gerr.ErrNotFound when no family matches exactly.
		GetFamilyByTutorCedula(ctx context.Context, cedula string) (*entity.Family, error)
		// GetFamilyByTutorNameKey looks a family up by the folded tutor name.
		GetFamilyByTutorNameKey(ctx context.Context, nameKey string) (*entity.Family, error)
		AddFamily(ctx context.Context, f *entity.FamilyInsert) (int, error)
		DeleteFamilyById(ctx context.Context, id int) error
	}

	PendingPlayer interface {
		AddPendingPlayer(ctx context.Context, pp *entity.PendingPlayerInsert) (int, error)
		DeletePendingPlayerById(ctx context.Context, id int) error
		// GetPendingPlayersCreatedBetween returns players ordered by creation, newest first.
		GetPendingPlayersCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.PendingPlayer, error)
	}

	Payment interface {
		// AddPayment inserts the payment with the events rendered into its notes and logs the events.
		// A non-zero id with an error means the row exists but the event log is incomplete.
		AddPayment(ctx context.Context, p *entity.PaymentInsert, events []*entity.PaymentEventInsert) (int, error)
		DeletePaymentById(ctx context.Context, id int) error
		GetPaymentById(ctx context.Context, id int) (*entity.Payment, error)
		GetPaymentByOperationReference(ctx context.Context, reference string) (*entity.Payment, error)
		// GetPaymentByReference matches the operation reference or a case-insensitive substring of the notes,
		// preferring approved payments.
		GetPaymentByReference(ctx context.Context, reference string) (*entity.Payment, error)
		GetLatestUnlinkedPaymentByAmount(ctx context.Context, amount decimal.Decimal) (*entity.Payment, error)
		// GetUnlinkedApprovedPayments returns approved payments without a player or marker created at or after since, oldest first.
		GetUnlinkedApprovedPayments(ctx context.Context, since time.Time, limit int) ([]entity.Payment, error)
		// GetLinkedPendingPlayerIds returns ids referenced by the notes marker of every payment but excludePaymentId.
		GetLinkedPendingPlayerIds(ctx context.Context, excludePaymentId int) ([]int, error)
		// AddPaymentEvent appends the event to the payment log and its rendering to the notes.
		// A second link event for the same payment returns gerr.ErrPaymentLinked.
		AddPaymentEvent(ctx context.Context, paymentId int, pe *entity.PaymentEventInsert) error
		GetPaymentEvents(ctx context.Context, paymentId int) ([]entity.PaymentEvent, error)
	}

	Mail interface {
		AddMail(ctx context.Context, item *entity.EmailQueueItemInsert) (int, error)
		CountSentSince(ctx context.Context, since time.Time) (int, error)
		CountPending(ctx context.Context) (int, error)
		// GetPendingMails returns at most limit pending items, oldest first.
		GetPendingMails(ctx context.Context, limit int) ([]entity.EmailQueueItem, error)
		UpdateSent(ctx context.Context, id int, providerMessageId string, sentAt time.Time) error
		UpdateFailed(ctx context.Context, id int, errMsg string) error
		// Requeue moves a failed item back to pending.
		Requeue(ctx context.Context, id int) error
		GetMailByProviderMessageId(ctx context.Context, messageId string) (*entity.EmailQueueItem, error)
		GetMailByProviderMessageIdFragment(ctx context.Context, fragment string) (*entity.EmailQueueItem, error)
		// ApplyStatusUpdate applies u only to fields that are still unset and reports whether the row changed.
		ApplyStatusUpdate(ctx context.Context, id int, u *entity.MailStatusUpdate) (bool, error)
	}

	Settings interface {
		// GetEnrollmentPrice returns the stored per-player price and whether one is set.
		GetEnrollmentPrice(ctx context.Context) (decimal.Decimal, bool, error)
		SetEnrollmentPrice(ctx context.Context, price decimal.Decimal) error
	}

	Repository interface {
		Family() Family
		PendingPlayer() PendingPlayer
		Payment() Payment
		Mail() Mail
		Settings() Settings
		Now() time.Time
		Ping(ctx context.Context) error
		Close()
		IsErrUniqueViolation(err error) bool
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// Sender delivers one queued email and returns the provider message id.
	Sender interface {
		Send(ctx context.Context, item *entity.EmailQueueItem) (string, error)
	}

	Mailer interface {
		QueueEnrollmentConfirmation(ctx context.Context, form *entity.EnrollmentForm, res *entity.EnrollmentResult, amount decimal.Decimal) (int, error)
		QueuePaymentReceived(ctx context.Context, to, name string, amount decimal.Decimal, res *entity.ReconcileResult) (int, error)
		ProcessQueue(ctx context.Context) (*entity.MailProcessResult, error)
		Requeue(ctx context.Context, id int) error
		Stats(ctx context.Context) (*entity.MailStats, error)
		// Kick asks the worker for a processing run without blocking the caller.
		Kick()
		Start(ctx context.Context) error
		Stop() error
	}

	Gateway interface {
		Method() entity.PaymentMethod
		CreatePaymentLink(ctx context.Context, req *entity.PaymentLinkRequest) (*entity.PaymentLink, error)
		// ParseCallback validates the inbound redirect or IPN parameters and normalizes them.
		ParseCallback(ctx context.Context, params url.Values) (*entity.PaymentConfirmation, error)
	}

	CheckoutStore interface {
		Put(ctx context.Context, c *entity.Checkout) (string, error)
		Get(ctx context.Context, token string) (*entity.Checkout, error)
		Delete(ctx context.Context, token string) error
		Ping(ctx context.Context) error
	}

	Enroller interface {
		Validate(form *entity.EnrollmentForm) error
		Enroll(ctx context.Context, form *entity.EnrollmentForm, pc *entity.PaymentConfirmation) (*entity.EnrollmentResult, error)
		Register(ctx context.Context, form *entity.EnrollmentForm) (*entity.EnrollmentResult, error)
		UnitPrice(ctx context.Context) (decimal.Decimal, error)
	}

	Matcher interface {
		Match(ctx context.Context, req *entity.ReconcileRequest) (*entity.ReconcileResult, error)
	}

	MailWebhook interface {
		Handle(ctx context.Context, body []byte, signature string) (*entity.MailWebhookSummary, error)
		SignatureHeader() string
	}
)
