package entity

import (
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PendingPlayerIdsMarker prefixes the list of pending players a payment is linked to.
// The marker is part of the notes contract and is parsed back by the matcher.
const PendingPlayerIdsMarker = "Pending Player IDs:"

var pendingPlayerIdsRe = regexp.MustCompile(`Pending Player IDs:[ \t]*([0-9][0-9, \t]*)`)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentApproved  PaymentStatus = "Approved"
	PaymentRejected  PaymentStatus = "Rejected"
	PaymentCancelled PaymentStatus = "Cancelled"
)

type PaymentMethod string

const (
	Card     PaymentMethod = "card"
	Yappy    PaymentMethod = "yappy"
	Cash     PaymentMethod = "cash"
	Transfer PaymentMethod = "transfer"
	Unknown  PaymentMethod = "unknown"
)

// ValidPaymentMethods is a set of valid payment methods
var ValidPaymentMethods = map[PaymentMethod]bool{
	Card:     true,
	Yappy:    true,
	Cash:     true,
	Transfer: true,
	Unknown:  true,
}

// IsOffline reports whether the method settles outside of a gateway.
func (pm PaymentMethod) IsOffline() bool {
	return pm == Cash || pm == Transfer
}

// Payment represents the payment table
type Payment struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	PaymentInsert
}

type PaymentInsert struct {
	PlayerId           sql.NullInt32   `db:"player_id"`
	Amount             decimal.Decimal `db:"amount"`
	Method             PaymentMethod   `db:"method"`
	Status             PaymentStatus   `db:"status"`
	OperationReference sql.NullString  `db:"operation_reference"`
	Notes              string          `db:"notes"`
}

// PendingPlayerIds returns the ids listed by every marker found in the notes.
func (p *Payment) PendingPlayerIds() []int {
	return ParsePendingPlayerIds(p.Notes)
}

// IsLinked reports whether the payment is attributed to a player or pending players.
func (p *Payment) IsLinked() bool {
	return p.PlayerId.Valid || HasPendingPlayerIdsMarker(p.Notes)
}

type PaymentEventKind string

const (
	PaymentEventCreated              PaymentEventKind = "created"
	PaymentEventGatewayConfirmed     PaymentEventKind = "gateway_confirmed"
	PaymentEventPendingPlayersLinked PaymentEventKind = "pending_players_linked"
	PaymentEventNote                 PaymentEventKind = "note"
)

// PaymentEvent is one entry of the append-only payment log.
type PaymentEvent struct {
	Id        int       `db:"id"`
	PaymentId int       `db:"payment_id"`
	CreatedAt time.Time `db:"created_at"`
	PaymentEventInsert
}

type PaymentEventInsert struct {
	Kind             PaymentEventKind `db:"kind"`
	Message          string           `db:"message"`
	PendingPlayerIds string           `db:"pending_player_ids"`
	Exact            bool             `db:"exact"`
}

// NoteLines renders the event the way it is appended to payment notes.
func (pe *PaymentEventInsert) NoteLines() []string {
	lines := []string{}
	if pe.Message != "" {
		lines = append(lines, pe.Message)
	}
	if pe.Kind == PaymentEventPendingPlayersLinked && pe.PendingPlayerIds != "" {
		lines = append(lines, fmt.Sprintf("%s %s", PendingPlayerIdsMarker, pe.PendingPlayerIds))
	}
	return lines
}

// LinkEvent builds the event that links a payment to pending players.
func LinkEvent(ids []int, exact bool, message string) *PaymentEventInsert {
	return &PaymentEventInsert{
		Kind:             PaymentEventPendingPlayersLinked,
		Message:          message,
		PendingPlayerIds: JoinIds(ids),
		Exact:            exact,
	}
}

// JoinIds renders ids as "1, 2, 3".
func JoinIds(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

// FormatPendingPlayerIds renders the full notes marker for ids.
func FormatPendingPlayerIds(ids []int) string {
	return fmt.Sprintf("%s %s", PendingPlayerIdsMarker, JoinIds(ids))
}

// HasPendingPlayerIdsMarker reports whether notes already carry a marker.
func HasPendingPlayerIdsMarker(notes string) bool {
	return strings.Contains(notes, PendingPlayerIdsMarker)
}

// ParsePendingPlayerIds extracts ids from every marker in notes, in order of appearance.
func ParsePendingPlayerIds(notes string) []int {
	ids := []int{}
	for _, m := range pendingPlayerIdsRe.FindAllStringSubmatch(notes, -1) {
		for _, raw := range strings.Split(m[1], ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			id, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids
}

// AppendNote appends lines to notes keeping prior content intact.
func AppendNote(notes string, lines ...string) string {
	for _, l := range lines {
		if l == "" {
			continue
		}
		if notes == "" {
			notes = l
			continue
		}
		notes = notes + "\n" + l
	}
	return notes
}

// SortedIds returns a sorted copy of ids.
func SortedIds(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}
