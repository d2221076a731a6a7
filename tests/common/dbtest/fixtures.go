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
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext behind every fixture account.
const TestPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		require.NoError(t, err)
		passwordHash = string(hash)
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return CreateTestUserWithPoints(t, db, email, role, 0)
}

func CreateTestUserWithPoints(t *testing.T, db DBLike, email, role string, points int64) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, email_verified, loyalty_points, is_active) VALUES ($1, $2, $3, $4, true, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(t), role, points)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateUnverifiedUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, email_verified, is_active) VALUES ($1, $2, $3, 'guest', false, true)",
		userID, email, testPasswordHash(t))
	require.NoError(t, err)

	return userID
}

func CreateTestResource(t *testing.T, db DBLike, ownerID uuid.UUID, name, category string, basePriceCents int64, maxOccupancy int) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO resources (id, owner_id, name, category, base_price_cents, max_occupancy) VALUES ($1, $2, $3, $4, $5, $6)",
		resourceID, ownerID, name, category, basePriceCents, maxOccupancy)
	require.NoError(t, err)

	return resourceID
}

func AddAvailableRange(t *testing.T, db DBLike, resourceID uuid.UUID, start, end time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO resource_available_ranges (resource_id, start_date, end_date) VALUES ($1, $2, $3)",
		resourceID, start, end)
	require.NoError(t, err)
}

func CreateTestCoupon(t *testing.T, db DBLike, ownerID uuid.UUID, code, discountType string, discountValue int64, expiryDate time.Time) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, code, owner_id, discount_type, discount_value, expiry_date, active) VALUES ($1, $2, $3, $4, $5, $6, true)",
		couponID, code, ownerID, discountType, discountValue, expiryDate)
	require.NoError(t, err)

	return couponID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
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
	return nil
}
