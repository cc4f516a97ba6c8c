package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const orderCacheKeyPrefix = "order"

// ErrMiss is returned by OrderCache.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// CachedOrder is the denormalized order read model stored in Redis as JSON.
type CachedOrder struct {
	ID                int64           `json:"id"`
	Total             decimal.Decimal `json:"total"`
	TotalWithDiscount decimal.Decimal `json:"total_with_discount"`
	InStock           bool            `json:"in_stock"`
	DeliveryDate      *time.Time      `json:"delivery_date,omitempty"`
	Customer          CachedCustomer  `json:"customer"`
	Items             []CachedItem    `json:"items"`
}

type CachedCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	VIP   bool   `json:"vip"`
}

type CachedItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Stock    int             `json:"stock"`
}

// OrderCache reads and writes CachedOrder entries. Key format: "order:{id}".
// Each customer also has a set "order:customer:{id}" listing the cached orders
// that embed its data, so a customer change can drop them all.
type OrderCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewOrderCache returns an OrderCache whose entries expire after ttl.
func NewOrderCache(r *RedisClient, ttl time.Duration) *OrderCache {
	return &OrderCache{client: r, ttl: ttl}
}

// Get returns ErrMiss when the order is not cached.
func (c *OrderCache) Get(ctx context.Context, id int64) (*CachedOrder, error) {
	raw, err := c.client.Client().Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var o CachedOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("cache decode order %d: %w", id, err)
	}
	return &o, nil
}

// Set overwrites the entry for o.ID and resets its TTL. The customer index is
// written in the same MULTI block, before the entry itself.
func (c *OrderCache) Set(ctx context.Context, o *CachedOrder) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("cache encode order %d: %w", o.ID, err)
	}
	_, err = c.client.Client().TxPipelined(ctx, func(p redis.Pipeliner) error {
		if o.Customer.ID != 0 {
			idx := customerKey(o.Customer.ID)
			p.SAdd(ctx, idx, o.ID)
			p.Expire(ctx, idx, c.ttl)
		}
		p.Set(ctx, key(o.ID), raw, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes the entry; deleting an absent key is not an error.
func (c *OrderCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client().Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// DeleteByCustomer removes every cached order indexed under customerID,
// together with the index.
func (c *OrderCache) DeleteByCustomer(ctx context.Context, customerID int64) error {
	idx := customerKey(customerID)
	ids, err := c.client.Client().SMembers(ctx, idx).Result()
	if err != nil {
		return fmt.Errorf("cache customer index: %w", err)
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, orderCacheKeyPrefix+":"+id)
	}
	keys = append(keys, idx)
	if err := c.client.Client().Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete customer orders: %w", err)
	}
	return nil
}

func customerKey(customerID int64) string {
	return fmt.Sprintf("%s:customer:%d", orderCacheKeyPrefix, customerID)
}

func key(id int64) string {
	return fmt.Sprintf("%s:%d", orderCacheKeyPrefix, id)
}
