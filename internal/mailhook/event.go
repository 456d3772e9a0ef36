package mailhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
)

const (
	EventSent         = "sent"
	EventRequest      = "request"
	EventDelivered    = "delivered"
	EventOpened       = "opened"
	EventUniqueOpened = "unique_opened"
	EventClick        = "click"
	EventBounce       = "bounce"
	EventHardBounce   = "hardBounce"
	EventSoftBounce   = "softBounce"
	EventSpam         = "spam"
	EventBlocked      = "blocked"
)

// eventNames maps lowercased provider event names to canonical ones.
var eventNames = map[string]string{
	"sent":          EventSent,
	"request":       EventRequest,
	"processed":     EventRequest,
	"delivered":     EventDelivered,
	"opened":        EventOpened,
	"open":          EventOpened,
	"unique_opened": EventUniqueOpened,
	"click":         EventClick,
	"clicked":       EventClick,
	"bounce":        EventBounce,
	"bounced":       EventBounce,
	"hardbounce":    EventHardBounce,
	"hard_bounce":   EventHardBounce,
	"softbounce":    EventSoftBounce,
	"soft_bounce":   EventSoftBounce,
	"spam":          EventSpam,
	"spamreport":    EventSpam,
	"blocked":       EventBlocked,
	"dropped":       EventBlocked,
}

var (
	messageIdKeys = []string{"message-id", "messageId", "message_id", "sg_message_id"}
	reasonKeys    = []string{"reason", "response", "error"}
	dateLayouts   = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}
)

// Event is one provider notification normalized to canonical names.
type Event struct {
	Name      string
	Raw       string
	MessageId string
	Reason    string
	At        time.Time
}

// ParseEvents decodes a single JSON object or an array of them. Events without a
// timestamp get receivedAt.
func ParseEvents(body []byte, receivedAt time.Time) ([]Event, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty webhook body", gerr.ErrValidation)
	}

	var raw []map[string]any
	if body[0] == '[' {
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("%w: can't decode webhook events: %v", gerr.ErrValidation, err)
		}
	} else {
		var one map[string]any
		if err := json.Unmarshal(body, &one); err != nil {
			return nil, fmt.Errorf("%w: can't decode webhook event: %v", gerr.ErrValidation, err)
		}
		raw = append(raw, one)
	}

	events := make([]Event, 0, len(raw))
	for _, r := range raw {
		name := stringField(r, "event")
		ev := Event{
			Raw:       name,
			Name:      CanonicalEvent(name),
			MessageId: NormalizeMessageId(firstString(r, messageIdKeys)),
			Reason:    strings.TrimSpace(firstString(r, reasonKeys)),
			At:        eventTime(r, receivedAt),
		}
		events = append(events, ev)
	}
	return events, nil
}

// CanonicalEvent resolves aliases, unknown names come back empty.
func CanonicalEvent(name string) string {
	return eventNames[strings.ToLower(strings.TrimSpace(name))]
}

// NormalizeMessageId strips whitespace and angle brackets.
func NormalizeMessageId(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, "<")
	id = strings.TrimSuffix(id, ">")
	return strings.TrimSpace(id)
}

// MessageIdFragment is the part of an id used for the fallback lookup: the local
// part before '@', without a sendgrid ".filter" suffix.
func MessageIdFragment(id string) string {
	if i := strings.Index(id, "@"); i >= 0 {
		id = id[:i]
	}
	if i := strings.Index(id, ".filter"); i >= 0 {
		id = id[:i]
	}
	return id
}

// StatusUpdate maps the event to a row mutation, nil for log-only events.
func (e *Event) StatusUpdate() *entity.MailStatusUpdate {
	reason := e.Reason
	if reason == "" {
		reason = e.Name
	}
	switch e.Name {
	case EventDelivered:
		return &entity.MailStatusUpdate{Field: entity.MailFieldDelivered, At: e.At}
	case EventOpened, EventUniqueOpened:
		return &entity.MailStatusUpdate{Field: entity.MailFieldOpened, At: e.At}
	case EventClick:
		return &entity.MailStatusUpdate{Field: entity.MailFieldClicked, At: e.At}
	case EventBounce, EventHardBounce, EventSoftBounce:
		return &entity.MailStatusUpdate{Field: entity.MailFieldBounced, At: e.At, Fail: true, ErrorMessage: reason}
	case EventSpam, EventBlocked:
		return &entity.MailStatusUpdate{Field: entity.MailFieldNone, At: e.At, Fail: true, ErrorMessage: reason}
	default:
		return nil
	}
}

func stringField(r map[string]any, key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func firstString(r map[string]any, keys []string) string {
	for _, k := range keys {
		if v := stringField(r, k); v != "" {
			return v
		}
	}
	return ""
}

func eventTime(r map[string]any, receivedAt time.Time) time.Time {
	for _, k := range []string{"ts", "timestamp", "date"} {
		switch v := r[k].(type) {
		case float64:
			if v > 0 {
				sec := int64(v)
				return time.Unix(sec, 0).UTC()
			}
		case string:
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
				return time.Unix(n, 0).UTC()
			}
			for _, l := range dateLayouts {
				if t, err := time.Parse(l, v); err == nil {
					return t.UTC()
				}
			}
		}
	}
	return receivedAt.UTC()
}
