package leads

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/realtor/pkg/crm"
	"github.com/umputun/realtor/pkg/domain"
	"github.com/umputun/realtor/pkg/leads/mocks"
	"github.com/umputun/realtor/pkg/repository"
)

func setupStorage(t *testing.T) *repository.StorageRepository {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos.Storage
}

func fixedNow() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.FixedZone("KGT", 6*3600)) }

func readLog(t *testing.T, st *repository.StorageRepository, key string) []map[string]any {
	t.Helper()
	value, err := st.Get(context.Background(), key)
	require.NoError(t, err)
	if value == "" {
		return nil
	}
	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(value), &records))
	return records
}

func TestSubmitter_SubmitLead(t *testing.T) {
	ctx := context.Background()

	t.Run("delivered", func(t *testing.T) {
		st := setupStorage(t)
		poster := &mocks.PosterMock{PostFunc: func(ctx context.Context, path string, body any) (any, error) {
			return map[string]any{"success": true}, nil
		}}
		s := NewSubmitter(poster, st)

		res := s.SubmitLead(ctx, map[string]string{"name": " <b>Айбек</b> ", "phone": "+996 555 000 000"})
		assert.True(t, res.Delivered)
		assert.False(t, res.Stored)
		assert.True(t, res.Success())

		require.Len(t, poster.PostCalls(), 1)
		assert.Equal(t, crm.PathLeads, poster.PostCalls()[0].Path)
		assert.Equal(t, map[string]string{"name": "Айбек", "phone": "+996 555 000 000"}, poster.PostCalls()[0].Body)
		assert.Empty(t, readLog(t, st, LeadsKey))
	})

	t.Run("failure stored locally with timestamp", func(t *testing.T) {
		st := setupStorage(t)
		poster := &mocks.PosterMock{PostFunc: func(ctx context.Context, path string, body any) (any, error) {
			return nil, errors.New("connection refused")
		}}
		s := NewSubmitter(poster, st)
		s.now = fixedNow

		res := s.SubmitLead(ctx, map[string]string{"name": "O'Brien & Co", "message": "позвоните"})
		assert.False(t, res.Delivered)
		assert.True(t, res.Stored)
		assert.False(t, res.Success())

		records := readLog(t, st, LeadsKey)
		require.Len(t, records, 1)
		assert.Equal(t, "O'Brien & Co", records[0]["name"])
		assert.Equal(t, "позвоните", records[0]["message"])
		assert.Equal(t, "2025-03-14T03:26:53.589Z", records[0]["timestamp"])

		// same lead again is appended, no dedup
		s.SubmitLead(ctx, map[string]string{"name": "O'Brien & Co", "message": "позвоните"})
		assert.Len(t, readLog(t, st, LeadsKey), 2)
	})

	t.Run("no crm configured", func(t *testing.T) {
		st := setupStorage(t)
		s := NewSubmitter(nil, st)
		res := s.SubmitLead(ctx, map[string]string{"name": "x"})
		assert.False(t, res.Delivered)
		assert.True(t, res.Stored)
		assert.Len(t, readLog(t, st, LeadsKey), 1)
	})

	t.Run("log failure is not fatal", func(t *testing.T) {
		s := NewSubmitter(nil, failingLog{})
		res := s.SubmitLead(ctx, map[string]string{"name": "x"})
		assert.False(t, res.Delivered)
		assert.False(t, res.Stored)
	})

	t.Run("no log", func(t *testing.T) {
		s := NewSubmitter(nil, nil)
		res := s.SubmitLead(ctx, map[string]string{"name": "x"})
		assert.Equal(t, domain.SubmitResult{}, res)
	})
}

func TestSubmitter_Subscribe(t *testing.T) {
	ctx := context.Background()
	rooms := 2

	t.Run("delivered", func(t *testing.T) {
		poster := &mocks.PosterMock{PostFunc: func(ctx context.Context, path string, body any) (any, error) {
			return map[string]any{"success": true}, nil
		}}
		s := NewSubmitter(poster, setupStorage(t))

		res := s.Subscribe(ctx, "user@example.com", domain.FilterCriteria{Rooms: &rooms})
		assert.True(t, res.Success())
		require.Len(t, poster.PostCalls(), 1)
		assert.Equal(t, crm.PathNewsletter, poster.PostCalls()[0].Path)
		assert.Equal(t, domain.Subscription{Email: "user@example.com", Filters: domain.FilterCriteria{Rooms: &rooms}},
			poster.PostCalls()[0].Body)
	})

	t.Run("failure stored locally", func(t *testing.T) {
		st := setupStorage(t)
		poster := &mocks.PosterMock{PostFunc: func(ctx context.Context, path string, body any) (any, error) {
			return nil, errors.New("bad gateway")
		}}
		s := NewSubmitter(poster, st)
		s.now = fixedNow

		res := s.Subscribe(ctx, "user@example.com", domain.FilterCriteria{Type: domain.PropertyCottage})
		assert.True(t, res.Stored)

		records := readLog(t, st, SubscriptionsKey)
		require.Len(t, records, 1)
		assert.Equal(t, "user@example.com", records[0]["email"])
		assert.Equal(t, map[string]any{"type": "cottage"}, records[0]["filters"])
		assert.Equal(t, "2025-03-14T03:26:53.589Z", records[0]["timestamp"])
	})

	t.Run("empty filters stored as empty object", func(t *testing.T) {
		st := setupStorage(t)
		s := NewSubmitter(nil, st)
		s.Subscribe(ctx, "a@b.kg", domain.FilterCriteria{})
		records := readLog(t, st, SubscriptionsKey)
		require.Len(t, records, 1)
		assert.Equal(t, map[string]any{}, records[0]["filters"])
	})
}

func TestSubmitter_ScheduleViewing(t *testing.T) {
	ctx := context.Background()

	t.Run("delivered", func(t *testing.T) {
		poster := &mocks.PosterMock{PostFunc: func(ctx context.Context, path string, body any) (any, error) {
			return map[string]any{"success": true, "slot": "10:00"}, nil
		}}
		s := NewSubmitter(poster, setupStorage(t))
		v := domain.Viewing{PropertyID: 1, DateTime: "2025-03-15T10:00", ContactInfo: "+996 555 000 000"}

		res := s.ScheduleViewing(ctx, v)
		assert.True(t, res.Delivered)
		assert.True(t, res.Success())
		require.Len(t, poster.PostCalls(), 1)
		assert.Equal(t, crm.PathViewings, poster.PostCalls()[0].Path)
		assert.Equal(t, v, poster.PostCalls()[0].Body)
	})

	t.Run("failure not stored", func(t *testing.T) {
		st := setupStorage(t)
		poster := &mocks.PosterMock{PostFunc: func(ctx context.Context, path string, body any) (any, error) {
			return nil, errors.New("timeout")
		}}
		s := NewSubmitter(poster, st)

		res := s.ScheduleViewing(ctx, domain.Viewing{PropertyID: 2})
		assert.Equal(t, domain.SubmitResult{}, res)
		keys, err := st.Keys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

type failingLog struct{}

func (failingLog) Append(context.Context, string, any) error { return errors.New("disk full") }
