//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parkhub/internal/domain/user"
	"parkhub/internal/usecase/queries"
	"parkhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionReads struct {
	byID   *queries.SessionView
	byUser []queries.SessionView
	active []queries.ActiveReservationSessionRow
}

func (f *fakeSessionReads) FindByID(_ context.Context, _ uuid.UUID) (*queries.SessionView, error) {
	return f.byID, nil
}

func (f *fakeSessionReads) ListByUser(_ context.Context, _ uuid.UUID) ([]queries.SessionView, error) {
	return f.byUser, nil
}

func (f *fakeSessionReads) ListActiveWithReservation(_ context.Context, _ uuid.UUID) ([]queries.ActiveReservationSessionRow, error) {
	return f.active, nil
}

func TestSessionGetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewSessionBuilder().BuildView()
	q := queries.NewSessionQueries(&fakeSessionReads{byID: view})

	t.Run("owner reads own session", func(t *testing.T) {
		got, err := q.GetByID(ctx, view.UserID, user.RoleDriver, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("other driver is rejected", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New(), user.RoleDriver, view.ID)
		assert.ErrorIs(t, err, queries.ErrSessionAccessDenied)
	})

	t.Run("admin reads any session", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New(), user.RoleAdmin, view.ID)
		assert.NoError(t, err)
	})
}

func TestListOverstaying(t *testing.T) {
	ctx := context.Background()
	lotID := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	overdue := queries.ActiveReservationSessionRow{
		SessionID:      uuid.New(),
		UserID:         uuid.New(),
		ReservationID:  uuid.New(),
		ReservationEnd: now.Add(-90 * time.Minute),
	}
	onTime := queries.ActiveReservationSessionRow{
		SessionID:      uuid.New(),
		UserID:         uuid.New(),
		ReservationID:  uuid.New(),
		ReservationEnd: now.Add(30 * time.Minute),
	}
	atBoundary := queries.ActiveReservationSessionRow{
		SessionID:      uuid.New(),
		UserID:         uuid.New(),
		ReservationID:  uuid.New(),
		ReservationEnd: now,
	}

	q := queries.NewSessionQueries(&fakeSessionReads{
		active: []queries.ActiveReservationSessionRow{overdue, onTime, atBoundary},
	})

	got, err := q.ListOverstaying(ctx, lotID, now)
	require.NoError(t, err)

	require.Len(t, got, 1, "only sessions strictly past their reservation end overstay")
	assert.Equal(t, overdue.SessionID, got[0].SessionID)
	assert.Equal(t, int64(90), got[0].OverstayMinutes)
}
