package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/ordersvc/pkg/config"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL: url,
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(context.Background(), newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &config.Config{RedisURL: "redis://:secret@cache.internal:6380/2", ServiceName: "ordersvc"}
	opts, err := clientOptions(cfg)
	if err != nil {
		t.Fatalf("clientOptions: %v", err)
	}
	if opts.Addr != "cache.internal:6380" || opts.DB != 2 || opts.Password != "secret" {
		t.Errorf("parsed URL: addr=%s db=%d", opts.Addr, opts.DB)
	}
	if opts.ClientName != "ordersvc" || opts.PoolSize != poolSize || opts.MinIdleConns != minIdleConns {
		t.Errorf("pool settings not applied: %+v", opts)
	}
}

func TestOrderCacheKeys(t *testing.T) {
	if got := key(42); got != "order:42" {
		t.Errorf("key(42) = %q, want %q", got, "order:42")
	}
	if got := customerKey(7); got != "order:customer:7" {
		t.Errorf("customerKey(7) = %q, want %q", got, "order:customer:7")
	}
}

// Integration tests, skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	rc, err := NewRedisClient(ctx, newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	t.Run("Ping_Success", func(t *testing.T) {
		if err := rc.Ping(ctx); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("OrderCache_RoundTrip", func(t *testing.T) {
		c := NewOrderCache(rc, time.Minute)
		delivery := time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)
		want := &CachedOrder{
			ID:                987654321,
			Total:             decimal.RequireFromString("130.00"),
			TotalWithDiscount: decimal.RequireFromString("117.00"),
			InStock:           true,
			DeliveryDate:      &delivery,
			Customer:          CachedCustomer{ID: 1, Name: "Ana", Email: "ana@example.com", VIP: true},
			Items:             []CachedItem{{ID: 1, Name: "Caneta", Price: decimal.RequireFromString("50"), Quantity: 2, Stock: 8}},
		}
		if err := c.Set(ctx, want); err != nil {
			t.Fatalf("Set: %v", err)
		}
		defer c.Delete(ctx, want.ID) //nolint:errcheck

		got, err := c.Get(ctx, want.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !got.Total.Equal(want.Total) || got.Customer.Email != want.Customer.Email || len(got.Items) != 1 {
			t.Errorf("unexpected cached order: %+v", got)
		}
		if got.DeliveryDate == nil || !got.DeliveryDate.Equal(delivery) {
			t.Errorf("DeliveryDate = %v, want %v", got.DeliveryDate, delivery)
		}
	})

	t.Run("OrderCache_Miss", func(t *testing.T) {
		c := NewOrderCache(rc, time.Minute)
		_ = c.Delete(ctx, 123456789)
		if _, err := c.Get(ctx, 123456789); !errors.Is(err, ErrMiss) {
			t.Fatalf("expected ErrMiss, got %v", err)
		}
	})

	t.Run("OrderCache_DeleteByCustomer", func(t *testing.T) {
		c := NewOrderCache(rc, time.Minute)
		const customerID = 424242
		for _, id := range []int64{987650001, 987650002} {
			if err := c.Set(ctx, &CachedOrder{ID: id, Customer: CachedCustomer{ID: customerID}}); err != nil {
				t.Fatalf("Set %d: %v", id, err)
			}
		}
		other := &CachedOrder{ID: 987650003, Customer: CachedCustomer{ID: customerID + 1}}
		if err := c.Set(ctx, other); err != nil {
			t.Fatalf("Set other: %v", err)
		}
		defer c.DeleteByCustomer(ctx, customerID+1) //nolint:errcheck

		if err := c.DeleteByCustomer(ctx, customerID); err != nil {
			t.Fatalf("DeleteByCustomer: %v", err)
		}
		for _, id := range []int64{987650001, 987650002} {
			if _, err := c.Get(ctx, id); !errors.Is(err, ErrMiss) {
				t.Errorf("order %d still cached: %v", id, err)
			}
		}
		if _, err := c.Get(ctx, other.ID); err != nil {
			t.Errorf("other customer's order evicted: %v", err)
		}
	})

	t.Run("Close_Success", func(t *testing.T) {
		other, err := NewRedisClient(ctx, newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := other.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	})
}
