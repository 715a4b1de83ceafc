//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestLot(t *testing.T, db DBLike, ownerID uuid.UUID, name string, totalSpots int) uuid.UUID {
	t.Helper()

	lotID := uuid.New()
	ctx := context.Background()

	tariffs := `[{"up_to_minutes": 60, "price_per_hour": 2.5}, {"up_to_minutes": 0, "price_per_hour": 2.0}]`
	schedule := `{}`

	_, err := db.Exec(ctx, `
		INSERT INTO parking_lots (id, owner_id, name, address, latitude, longitude, total_spots, tariffs, schedule, is_active)
		VALUES ($1, $2, $3, '1 Main St', 35.6812, 139.7671, $4, $5, $6, true)`,
		lotID, ownerID, name, totalSpots, tariffs, schedule)
	require.NoError(t, err)

	return lotID
}

func CreateTestReservation(t *testing.T, db DBLike, userID, lotID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, user_id, lot_id, start_time, end_time, status, estimated_price)
		VALUES ($1, $2, $3, $4, $5, 'active', 5.0)`,
		reservationID, userID, lotID, start, end)
	require.NoError(t, err)

	return reservationID
}

func CreateTestSubscription(t *testing.T, db DBLike, userID, lotID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	subscriptionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO subscriptions (id, user_id, lot_id, plan, price, start_date, end_date, is_active)
		VALUES ($1, $2, $3, 'monthly', 50.0, $4, $5, true)`,
		subscriptionID, userID, lotID, start, end)
	require.NoError(t, err)

	return subscriptionID
}

// CreateTestSession inserts an active session directly, bypassing entry
// validation. Exactly one of reservationID/subscriptionID must be non-nil.
func CreateTestSession(t *testing.T, db DBLike, userID, lotID uuid.UUID, reservationID, subscriptionID *uuid.UUID, entry time.Time) uuid.UUID {
	t.Helper()

	sessionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO parking_sessions (id, user_id, lot_id, reservation_id, subscription_id, entry_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'active')`,
		sessionID, userID, lotID, reservationID, subscriptionID, entry)
	require.NoError(t, err)

	return sessionID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES (gen_random_uuid(), 'admin@example.com', $1, 'admin', true)
		ON CONFLICT (email) WHERE is_active = true DO NOTHING;
	`, testPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
