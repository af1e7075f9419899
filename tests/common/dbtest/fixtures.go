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

// bcrypt of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, name, email string, isAdmin bool) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_admin, email_verified_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (email) DO NOTHING`,
		userID, name, email, testPasswordHash, isAdmin)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestBooking(t *testing.T, db DBLike, userID uuid.UUID, date, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, user_id, date, status, needs_approval)
		VALUES ($1, $2, $3, $4, $5)`,
		bookingID, userID, date, status, status == "pending")
	require.NoError(t, err)

	return bookingID
}

func BlockDate(t *testing.T, db DBLike, date string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO blocked_dates (id, date) VALUES ($1, $2)
		ON CONFLICT (date) DO NOTHING`, uuid.New(), date)
	require.NoError(t, err)
}

func UpdateTestSettings(t *testing.T, db DBLike, maxPerDay int, maxPerWeek *int, allowedDays []int, requireApproval bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		UPDATE app_settings
		SET max_bookings_per_day = $1,
		    max_bookings_per_week_per_user = $2,
		    allowed_days = $3,
		    require_approval_for_bookings = $4,
		    updated_at = now()`,
		maxPerDay, maxPerWeek, allowedDays, requireApproval)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO departments (id, name) VALUES
		    (gen_random_uuid(), '開発部'),
		    (gen_random_uuid(), '営業部'),
		    (gen_random_uuid(), '管理部')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// The settings row is truncated along with everything else; restore the defaults.
	_, err = pool.Exec(ctx, `
		INSERT INTO app_settings (max_bookings_per_day, max_bookings_per_week_per_user, allowed_days, require_approval_for_bookings)
		VALUES (3, 2, '{1,2,3,4,5}', false)
		ON CONFLICT (onerow) DO NOTHING;
	`)
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
		    AND tablename NOT IN ('goose_db_version')`)
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
