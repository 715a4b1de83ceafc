//go:build unit

package session_test

import (
	"testing"
	"time"

	"parkhub/internal/domain/session"
	"parkhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Run("reservation backed", func(t *testing.T) {
		sess, err := builder.NewSessionBuilder().BackedByReservation(uuid.New()).BuildDomain()
		require.NoError(t, err)

		assert.NotNil(t, sess.ReservationID())
		assert.Nil(t, sess.SubscriptionID())
		assert.True(t, sess.IsActive())
	})

	t.Run("subscription backed", func(t *testing.T) {
		sess, err := builder.NewSessionBuilder().BackedBySubscription(uuid.New()).BuildDomain()
		require.NoError(t, err)

		assert.Nil(t, sess.ReservationID())
		assert.NotNil(t, sess.SubscriptionID())
	})

	t.Run("no backing credential", func(t *testing.T) {
		_, err := builder.NewSessionBuilder().WithoutBacking().BuildDomain()
		assert.ErrorIs(t, err, session.ErrCredentialRequired)
	})

	t.Run("both credentials", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		subscriptionID := uuid.New()
		b.SubscriptionID = &subscriptionID
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, session.ErrCredentialRequired)
	})
}

func TestSessionComplete(t *testing.T) {
	entry := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("completion is one-way", func(t *testing.T) {
		sess, err := builder.NewSessionBuilder().WithEntryTime(entry).BuildDomain()
		require.NoError(t, err)

		exit := entry.Add(2 * time.Hour)
		require.NoError(t, sess.Complete(exit, 5.0, 0))

		assert.Equal(t, session.StatusCompleted, sess.Status())
		require.NotNil(t, sess.ExitTime())
		assert.Equal(t, exit, *sess.ExitTime())
		assert.InDelta(t, 5.0, sess.FinalPrice(), 1e-9)

		assert.ErrorIs(t, sess.Complete(exit.Add(time.Hour), 9.0, 0), session.ErrAlreadyCompleted)
		assert.InDelta(t, 5.0, sess.FinalPrice(), 1e-9, "second completion must not change the outcome")
	})

	t.Run("negative amounts rejected", func(t *testing.T) {
		sess, err := builder.NewSessionBuilder().WithEntryTime(entry).BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, sess.Complete(entry.Add(time.Hour), -1, 0), session.ErrNegativeAmount)
		assert.True(t, sess.IsActive(), "failed completion leaves the session active")
	})
}

func TestSessionElapsedMinutes(t *testing.T) {
	entry := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sess, err := builder.NewSessionBuilder().WithEntryTime(entry).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, int64(90), sess.ElapsedMinutes(entry.Add(90*time.Minute)))
	assert.Equal(t, int64(1), sess.ElapsedMinutes(entry.Add(119*time.Second)), "partial minutes truncate")
	assert.Equal(t, int64(0), sess.ElapsedMinutes(entry.Add(59*time.Second)))
}

func TestPenalty(t *testing.T) {
	end := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

	t.Run("no overstay no penalty", func(t *testing.T) {
		assert.Zero(t, session.Penalty(end, end, 5.0))
		assert.Zero(t, session.Penalty(end.Add(-time.Minute), end, 5.0))
	})

	t.Run("penalty accrues per second of overstay", func(t *testing.T) {
		got := session.Penalty(end.Add(time.Minute), end, 5.0)
		assert.InDelta(t, 5.0*60/3600, got, 1e-9)
	})

	t.Run("full hour of overstay", func(t *testing.T) {
		got := session.Penalty(end.Add(time.Hour), end, 5.0)
		assert.InDelta(t, 5.0, got, 1e-9)
	})
}
