package entity

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type MailStatus string

const (
	MailPending MailStatus = "pending"
	MailSent    MailStatus = "sent"
	MailFailed  MailStatus = "failed"
)

// EmailQueueItem represents the email_queue table
type EmailQueueItem struct {
	Id                int            `db:"id"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	Status            MailStatus     `db:"status"`
	ProviderMessageId sql.NullString `db:"provider_message_id"`
	ErrorMessage      sql.NullString `db:"error_message"`
	SentAt            sql.NullTime   `db:"sent_at"`
	DeliveredAt       sql.NullTime   `db:"delivered_at"`
	OpenedAt          sql.NullTime   `db:"opened_at"`
	ClickedAt         sql.NullTime   `db:"clicked_at"`
	BouncedAt         sql.NullTime   `db:"bounced_at"`
	EmailQueueItemInsert
}

type EmailQueueItemInsert struct {
	FromEmail string       `db:"from_email"`
	FromName  string       `db:"from_name"`
	ToEmail   string       `db:"to_email"`
	ToName    string       `db:"to_name"`
	ReplyTo   string       `db:"reply_to"`
	Subject   string       `db:"subject"`
	Html      string       `db:"html"`
	Template  string       `db:"template"`
	Metadata  MailMetadata `db:"metadata"`
}

// MailMetadata correlates a queued email with the rows it is about.
type MailMetadata struct {
	PlayerIds []int  `json:"player_ids,omitempty"`
	FamilyId  int    `json:"family_id,omitempty"`
	PaymentId int    `json:"payment_id,omitempty"`
	Reference string `json:"reference,omitempty"`
}

func (mm MailMetadata) Value() (driver.Value, error) {
	b, err := json.Marshal(mm)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (mm *MailMetadata) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*mm = MailMetadata{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}
	if len(b) == 0 {
		*mm = MailMetadata{}
		return nil
	}
	return json.Unmarshal(b, mm)
}

// MailEventField is the set-once timestamp column a provider event fills.
type MailEventField string

const (
	MailFieldNone      MailEventField = ""
	MailFieldDelivered MailEventField = "delivered_at"
	MailFieldOpened    MailEventField = "opened_at"
	MailFieldClicked   MailEventField = "clicked_at"
	MailFieldBounced   MailEventField = "bounced_at"
)

// MailStatusUpdate is the row mutation derived from one provider event.
type MailStatusUpdate struct {
	Field        MailEventField
	At           time.Time
	Fail         bool
	ErrorMessage string
}

// Mutates reports whether applying the update touches the row at all.
func (u *MailStatusUpdate) Mutates() bool {
	return u.Field != MailFieldNone || u.Fail
}

// MailStats summarizes the queue against the daily cap.
type MailStats struct {
	DailyCap  int `json:"daily_cap"`
	SentToday int `json:"sent_today"`
	Remaining int `json:"remaining"`
	Pending   int `json:"pending"`
}

// MailProcessResult summarizes one queue processing run.
type MailProcessResult struct {
	Sent      int  `json:"sent"`
	Failed    int  `json:"failed"`
	Remaining int  `json:"remaining"`
	Throttled bool `json:"throttled"`
}

// MailWebhookSummary counts what a webhook delivery did to the queue.
type MailWebhookSummary struct {
	Received int `json:"received"`
	Applied  int `json:"applied"`
	Ignored  int `json:"ignored"`
	Unknown  int `json:"unknown"`
	Errors   int `json:"errors"`
}
