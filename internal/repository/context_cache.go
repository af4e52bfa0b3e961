package repository

import (
	"context"
	"time"

	"qa_kb_backend/internal/model"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"
)

// ContextCache 缓存上下文组的段落。
// 上下文组写入后不再修改（编辑答案时分配新的上下文ID），所以无需失效处理，只靠 TTL 回收。
type ContextCache struct {
	Redis  *redis.Client
	TTL    time.Duration
	prefix string
}

func NewContextCache(rdb *redis.Client, ttl time.Duration) *ContextCache {
	return &ContextCache{
		Redis:  rdb,
		TTL:    ttl,
		prefix: "qa:context:",
	}
}

// Get 未命中时返回 (nil, false, nil)
func (c *ContextCache) Get(ctx context.Context, contextID string) ([]model.ContextParagraph, bool, error) {
	data, err := c.Redis.Get(ctx, c.prefix+contextID).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rows []model.ContextParagraph
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

func (c *ContextCache) Set(ctx context.Context, contextID string, rows []model.ContextParagraph) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, c.prefix+contextID, data, c.TTL).Err()
}

func (c *ContextCache) Ping(ctx context.Context) error {
	return c.Redis.Ping(ctx).Err()
}
