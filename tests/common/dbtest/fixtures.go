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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Seeded ids shared by the e2e suites.
const (
	MemberA int64 = 1
	MemberB int64 = 2

	CartItemChicken int64 = 1 // member A, 200000 x1
	CartItemPizza   int64 = 2 // member A, 180400 x1
	CartItemSalad   int64 = 3 // member B

	CouponFixed   int64 = 1 // 5000 off
	CouponPercent int64 = 2 // 10 percent off

	OrderOfMemberB int64 = 4
)

// inserts the members, catalog, carts, coupons and historical orders used by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO members (id, email, nickname) VALUES
		    (1, 'a@a.com', 'member-a'),
		    (2, 'b@b.com', 'member-b');

		INSERT INTO products (id, name, price, image_url) VALUES
		    (1, 'chicken', 200000, 'https://example.com/chicken.png'),
		    (2, 'pizza', 180400, 'https://example.com/pizza.png'),
		    (3, 'salad', 12000, 'https://example.com/salad.png');

		INSERT INTO cart_items (id, member_id, product_id, quantity) VALUES
		    (1, 1, 1, 1),
		    (2, 1, 2, 1),
		    (3, 2, 3, 2);

		INSERT INTO coupons (id, name, discount_amount, discount_percent) VALUES
		    (1, 'welcome 5000', 5000, NULL),
		    (2, 'ten percent', NULL, 10);

		INSERT INTO member_coupons (member_id, coupon_id, used_yn) VALUES
		    (1, 1, 'N'),
		    (1, 2, 'N'),
		    (2, 1, 'N');

		INSERT INTO orders (id, member_id, delivery_fee, coupon_id, ordered_at) VALUES
		    (1, 1, 3000, NULL, '2023-06-01 10:00:00+00'),
		    (2, 1, 3000, NULL, '2023-06-02 10:00:00+00'),
		    (3, 1, 0, NULL, '2023-06-03 10:00:00+00'),
		    (4, 2, 3000, NULL, '2023-06-04 10:00:00+00');

		INSERT INTO order_items (order_id, name, price, image_url, quantity) VALUES
		    (1, 'chicken', 200000, 'https://example.com/chicken.png', 1),
		    (2, 'pizza', 180400, 'https://example.com/pizza.png', 2),
		    (3, 'salad', 12000, 'https://example.com/salad.png', 1),
		    (4, 'salad', 12000, 'https://example.com/salad.png', 3);

		SELECT setval('members_id_seq', (SELECT MAX(id) FROM members));
		SELECT setval('products_id_seq', (SELECT MAX(id) FROM products));
		SELECT setval('cart_items_id_seq', (SELECT MAX(id) FROM cart_items));
		SELECT setval('coupons_id_seq', (SELECT MAX(id) FROM coupons));
		SELECT setval('orders_id_seq', (SELECT MAX(id) FROM orders));
	`)
	if err != nil {
		return err
	}

	return nil
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOrderItems(t *testing.T, db DBLike, orderID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM order_items WHERE order_id = $1", orderID).Scan(&n)
	require.NoError(t, err)
	return n
}

func OrderExists(t *testing.T, db DBLike, orderID int64) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(), "SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)", orderID).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func MemberCouponUsedYn(t *testing.T, db DBLike, memberID, couponID int64) string {
	t.Helper()

	var usedYn string
	err := db.QueryRow(context.Background(),
		"SELECT used_yn FROM member_coupons WHERE member_id = $1 AND coupon_id = $2", memberID, couponID).Scan(&usedYn)
	require.NoError(t, err)
	return usedYn
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
