// Package cache guarda agregados financeiros em Redis. O cache é
// opcional: com o ponteiro nil todas as operações viram no-ops e o
// núcleo segue funcionando só com o banco.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/agendalivre/platform-api/internal/domain/ledger"
)

const summaryTTL = 60 * time.Second

type SummaryCache struct {
	rdb *redis.Client
}

func NewSummaryCache(redisURL string) (*SummaryCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SummaryCache{rdb: rdb}, nil
}

// Chaves versionadas por tenant: invalidar é incrementar a versão,
// sem varrer o keyspace.
func (c *SummaryCache) versionKey(tenantID string) string {
	return "finsum:ver:" + tenantID
}

func (c *SummaryCache) key(ctx context.Context, tenantID, start, end string) string {
	ver, err := c.rdb.Get(ctx, c.versionKey(tenantID)).Result()
	if err != nil {
		ver = "0"
	}
	return fmt.Sprintf("finsum:%s:%s:%s:%s", tenantID, ver, start, end)
}

func (c *SummaryCache) Get(
	ctx context.Context,
	tenantID, start, end string,
) (*ledger.Summary, bool) {

	if c == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, c.key(ctx, tenantID, start, end)).Result()
	if err != nil {
		return nil, false
	}

	var s ledger.Summary
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (c *SummaryCache) Set(
	ctx context.Context,
	tenantID, start, end string,
	s *ledger.Summary,
) {

	if c == nil {
		return
	}

	b, err := json.Marshal(s)
	if err != nil {
		return
	}

	if err := c.rdb.Set(
		ctx, c.key(ctx, tenantID, start, end), b, summaryTTL,
	).Err(); err != nil {
		logrus.WithError(err).Warn("summary cache set failed")
	}
}

func (c *SummaryCache) InvalidateTenant(ctx context.Context, tenantID string) {
	if c == nil {
		return
	}

	if err := c.rdb.Incr(ctx, c.versionKey(tenantID)).Err(); err != nil {
		logrus.WithError(err).Warn("summary cache invalidation failed")
	}
}
