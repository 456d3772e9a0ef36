package mail

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jekabolt/academy-manager/internal/dependency"
	"github.com/jekabolt/academy-manager/internal/dependency/mocks"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 10:00 in America/Panama.
var testNow = time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

// memMail is an in-memory email_queue.
type memMail struct {
	mu     sync.Mutex
	nextId int
	items  map[int]*entity.EmailQueueItem
}

var _ dependency.Mail = (*memMail)(nil)

func newMemMail() *memMail {
	return &memMail{items: map[int]*entity.EmailQueueItem{}}
}

func (mm *memMail) add(status entity.MailStatus, createdAt time.Time, sentAt sql.NullTime) int {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.nextId++
	mm.items[mm.nextId] = &entity.EmailQueueItem{
		Id:        mm.nextId,
		CreatedAt: createdAt,
		Status:    status,
		SentAt:    sentAt,
		EmailQueueItemInsert: entity.EmailQueueItemInsert{
			ToEmail: fmt.Sprintf("tutor%d@example.com", mm.nextId),
			Subject: "subject",
		},
	}
	return mm.nextId
}

func (mm *memMail) count(status entity.MailStatus) int {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	n := 0
	for _, it := range mm.items {
		if it.Status == status {
			n++
		}
	}
	return n
}

func (mm *memMail) get(id int) entity.EmailQueueItem {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return *mm.items[id]
}

func (mm *memMail) AddMail(_ context.Context, item *entity.EmailQueueItemInsert) (int, error) {
	id := mm.add(entity.MailPending, testNow, sql.NullTime{})
	mm.mu.Lock()
	mm.items[id].EmailQueueItemInsert = *item
	mm.mu.Unlock()
	return id, nil
}

func (mm *memMail) CountSentSince(_ context.Context, since time.Time) (int, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	n := 0
	for _, it := range mm.items {
		if it.SentAt.Valid && !it.SentAt.Time.Before(since) {
			n++
		}
	}
	return n, nil
}

func (mm *memMail) CountPending(_ context.Context) (int, error) {
	return mm.count(entity.MailPending), nil
}

func (mm *memMail) GetPendingMails(_ context.Context, limit int) ([]entity.EmailQueueItem, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	out := []entity.EmailQueueItem{}
	for _, it := range mm.items {
		if it.Status == entity.MailPending {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (mm *memMail) UpdateSent(_ context.Context, id int, providerMessageId string, sentAt time.Time) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	it := mm.items[id]
	if it.Status != entity.MailPending {
		return nil
	}
	it.Status = entity.MailSent
	it.SentAt = sql.NullTime{Time: sentAt, Valid: true}
	it.ProviderMessageId = sql.NullString{String: providerMessageId, Valid: providerMessageId != ""}
	return nil
}

func (mm *memMail) UpdateFailed(_ context.Context, id int, errMsg string) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	it := mm.items[id]
	it.Status = entity.MailFailed
	it.ErrorMessage = sql.NullString{String: errMsg, Valid: true}
	return nil
}

func (mm *memMail) Requeue(_ context.Context, id int) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	it, ok := mm.items[id]
	if !ok || it.Status != entity.MailFailed {
		return gerr.ErrNotFound
	}
	it.Status = entity.MailPending
	it.ErrorMessage = sql.NullString{}
	return nil
}

func (mm *memMail) GetMailByProviderMessageId(context.Context, string) (*entity.EmailQueueItem, error) {
	return nil, gerr.ErrNotFound
}

func (mm *memMail) GetMailByProviderMessageIdFragment(context.Context, string) (*entity.EmailQueueItem, error) {
	return nil, gerr.ErrNotFound
}

func (mm *memMail) ApplyStatusUpdate(context.Context, int, *entity.MailStatusUpdate) (bool, error) {
	return false, nil
}

func testConfig(dailyCap int) *Config {
	return &Config{
		FromEmail:   "no-reply@academy.test",
		FromName:    "Academia Test",
		ReplyTo:     "admin@academy.test",
		AcademyName: "Academia Test",
		DailyCap:    dailyCap,
	}
}

func newTestMailer(t *testing.T, c *Config, sender dependency.Sender, repo dependency.Mail) *Mailer {
	t.Helper()
	m, err := new(c, sender, repo)
	require.NoError(t, err)
	m.now = func() time.Time { return testNow }
	return m
}

func sentAt(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func TestProcessQueueRespectsDailyCap(t *testing.T) {
	ctx := context.Background()
	repo := newMemMail()
	for i := 0; i < 7; i++ {
		repo.add(entity.MailSent, testNow.Add(-3*time.Hour), sentAt(testNow.Add(-2*time.Hour)))
	}
	for i := 0; i < 20; i++ {
		repo.add(entity.MailPending, testNow.Add(-time.Hour), sql.NullTime{})
	}

	sender := mocks.NewSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return("msg@provider", nil).Times(3)

	m := newTestMailer(t, testConfig(10), sender, repo)
	res, err := m.ProcessQueue(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Sent)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 17, repo.count(entity.MailPending))
	assert.Equal(t, 10, repo.count(entity.MailSent))

	// a second run the same day sends nothing
	res, err = m.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, 17, repo.count(entity.MailPending))
}

func TestProcessQueueSendsOldestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newMemMail()
	first := repo.add(entity.MailPending, testNow.Add(-2*time.Hour), sql.NullTime{})
	second := repo.add(entity.MailPending, testNow.Add(-time.Hour), sql.NullTime{})

	sender := mocks.NewSender(t)
	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(it *entity.EmailQueueItem) bool {
		return it.Id == first
	})).Return("first@provider", nil).Once()

	m := newTestMailer(t, testConfig(1), sender, repo)
	res, err := m.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)

	sent := repo.get(first)
	assert.Equal(t, entity.MailSent, sent.Status)
	assert.Equal(t, "first@provider", sent.ProviderMessageId.String)
	assert.Equal(t, testNow, sent.SentAt.Time)
	assert.Equal(t, entity.MailPending, repo.get(second).Status)
}

func TestProcessQueueDayBoundaryUsesTimezone(t *testing.T) {
	ctx := context.Background()
	repo := newMemMail()
	// 23:00 the previous day in Panama
	repo.add(entity.MailSent, testNow.Add(-12*time.Hour), sentAt(time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)))
	// 01:00 today in Panama
	repo.add(entity.MailSent, testNow.Add(-12*time.Hour), sentAt(time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)))
	repo.add(entity.MailPending, testNow, sql.NullTime{})
	repo.add(entity.MailPending, testNow, sql.NullTime{})

	sender := mocks.NewSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return("msg@provider", nil).Once()

	m := newTestMailer(t, testConfig(2), sender, repo)
	res, err := m.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, repo.count(entity.MailPending))
}

func TestProcessQueueCapReachedDoesNothing(t *testing.T) {
	ctx := context.Background()
	repo := newMemMail()
	for i := 0; i < 3; i++ {
		repo.add(entity.MailSent, testNow, sentAt(testNow.Add(-time.Minute)))
	}
	repo.add(entity.MailPending, testNow, sql.NullTime{})

	m := newTestMailer(t, testConfig(3), mocks.NewSender(t), repo)
	res, err := m.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.MailProcessResult{}, res)
	assert.Equal(t, 1, repo.count(entity.MailPending))
}

func TestProcessQueueFailureIsNotRetried(t *testing.T) {
	ctx := context.Background()
	repo := newMemMail()
	bad := repo.add(entity.MailPending, testNow, sql.NullTime{})
	good := repo.add(entity.MailPending, testNow, sql.NullTime{})

	sender := mocks.NewSender(t)
	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(it *entity.EmailQueueItem) bool {
		return it.Id == bad
	})).Return("", errors.New("invalid recipient")).Once()
	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(it *entity.EmailQueueItem) bool {
		return it.Id == good
	})).Return("good@provider", nil).Once()

	m := newTestMailer(t, testConfig(10), sender, repo)
	res, err := m.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 9, res.Remaining)

	failed := repo.get(bad)
	assert.Equal(t, entity.MailFailed, failed.Status)
	assert.Equal(t, "invalid recipient", failed.ErrorMessage.String)

	// failed items stay failed on the next run
	res, err = m.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Sent+res.Failed)
	assert.Equal(t, entity.MailFailed, repo.get(bad).Status)
}

func TestProcessQueueProviderLimitStopsRun(t *testing.T) {
	ctx := context.Background()
	repo := newMemMail()
	first := repo.add(entity.MailPending, testNow, sql.NullTime{})
	throttled := repo.add(entity.MailPending, testNow, sql.NullTime{})
	repo.add(entity.MailPending, testNow, sql.NullTime{})

	sender := mocks.NewSender(t)
	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(it *entity.EmailQueueItem) bool {
		return it.Id == first
	})).Return("first@provider", nil).Once()
	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(it *entity.EmailQueueItem) bool {
		return it.Id == throttled
	})).Return("", gerr.ErrMailApiLimitReached).Once()

	m := newTestMailer(t, testConfig(10), sender, repo)
	res, err := m.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.True(t, res.Throttled)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, entity.MailPending, repo.get(throttled).Status)
	assert.Equal(t, 2, repo.count(entity.MailPending))
}

func TestRequeue(t *testing.T) {
	ctx := context.Background()
	repo := newMemMail()
	failed := repo.add(entity.MailFailed, testNow, sql.NullTime{})
	pending := repo.add(entity.MailPending, testNow, sql.NullTime{})

	m := newTestMailer(t, testConfig(10), mocks.NewSender(t), repo)

	require.NoError(t, m.Requeue(ctx, failed))
	assert.Equal(t, entity.MailPending, repo.get(failed).Status)

	err := m.Requeue(ctx, pending)
	assert.ErrorIs(t, err, gerr.ErrNotFound)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	repo := newMemMail()
	for i := 0; i < 4; i++ {
		repo.add(entity.MailSent, testNow, sentAt(testNow.Add(-time.Minute)))
	}
	repo.add(entity.MailPending, testNow, sql.NullTime{})
	repo.add(entity.MailFailed, testNow, sql.NullTime{})

	m := newTestMailer(t, testConfig(3), mocks.NewSender(t), repo)
	st, err := m.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.MailStats{DailyCap: 3, SentToday: 4, Remaining: 0, Pending: 1}, st)
}

func TestProcessQueueCountError(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMail(t)
	repo.EXPECT().CountSentSince(ctx, mock.Anything).Return(0, errors.New("db down"))

	m := newTestMailer(t, testConfig(10), mocks.NewSender(t), repo)
	_, err := m.ProcessQueue(ctx)
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	m := newTestMailer(t, testConfig(10), mocks.NewSender(t), newMemMail())
	sod := m.startOfDay()
	assert.True(t, sod.Equal(time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)))
}

func TestNewDefaults(t *testing.T) {
	c := &Config{FromEmail: "a@b.test", FromName: "Academy"}
	m, err := new(c, mocks.NewSender(t), newMemMail())
	require.NoError(t, err)
	assert.Equal(t, defaultDailyCap, m.c.DailyCap)
	assert.Equal(t, defaultTimezone, m.loc.String())
	assert.Equal(t, "Academy", m.c.AcademyName)

	_, err = new(&Config{FromEmail: "a@b.test", FromName: "Academy", DailyCap: -1}, nil, nil)
	assert.Error(t, err)

	_, err = new(&Config{FromName: "Academy"}, nil, nil)
	assert.Error(t, err)

	_, err = new(&Config{FromEmail: "a@b.test", FromName: "Academy", Timezone: "Mars/Olympus"}, nil, nil)
	assert.Error(t, err)
}

func TestKickProcessesQueueWithoutInterval(t *testing.T) {
	mm := newMemMail()
	id := mm.add(entity.MailPending, testNow.Add(-time.Hour), sql.NullTime{})

	sender := mocks.NewSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return("msg-1", nil).Once()

	m := newTestMailer(t, testConfig(10), sender, mm)
	require.NoError(t, m.Start(context.Background()))
	defer m.Stop()

	m.Kick()
	m.Kick()

	assert.Eventually(t, func() bool {
		return mm.get(id).Status == entity.MailSent
	}, time.Second, 10*time.Millisecond)
}

func TestStartStop(t *testing.T) {
	m := newTestMailer(t, testConfig(10), mocks.NewSender(t), newMemMail())
	require.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Start(context.Background()))
	require.NoError(t, m.Stop())
	assert.Error(t, m.Stop())
}

// downSent fails UpdateSent while down is set.
type downSent struct {
	*memMail
	down  bool
	calls int
}

func (ds *downSent) UpdateSent(ctx context.Context, id int, providerMessageId string, sentAt time.Time) error {
	ds.calls++
	if ds.down {
		return errors.New("db down")
	}
	return ds.memMail.UpdateSent(ctx, id, providerMessageId, sentAt)
}

func TestProcessQueueUnrecordedSendIsNotRepeated(t *testing.T) {
	ctx := context.Background()
	repo := &downSent{memMail: newMemMail(), down: true}
	id := repo.add(entity.MailPending, testNow, sql.NullTime{})

	sender := mocks.NewSender(t)
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return("msg@provider", nil).Once()

	m := newTestMailer(t, testConfig(1), sender, repo)

	res, err := m.ProcessQueue(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 2, repo.calls)
	assert.Equal(t, entity.MailPending, repo.get(id).Status)

	for i := 0; i < 2; i++ {
		res, err = m.ProcessQueue(ctx)
		require.Error(t, err)
		assert.Equal(t, 0, res.Sent)
	}

	repo.down = false
	res, err = m.ProcessQueue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Sent)

	sent := repo.get(id)
	assert.Equal(t, entity.MailSent, sent.Status)
	assert.Equal(t, "msg@provider", sent.ProviderMessageId.String)
	assert.Equal(t, 0, repo.count(entity.MailPending))
}
