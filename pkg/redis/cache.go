package redis

import (
	"context"
	"encoding/json"
	"fmt"
)

// Cache stores JSON encoded values under "<name>::<key>", expiring them after the TTL configured for name.
type Cache struct {
	client *Client
	name   string
}

func NewCache(client *Client, name string) *Cache {
	return &Cache{client: client, name: name}
}

func (c *Cache) Name() string {
	return c.name
}

func (c *Cache) key(key string) string {
	if c.name == "" {
		return key
	}
	return c.name + "::" + key
}

// Get decodes the cached value into dest. A miss returns false and no error.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.key(key))
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", c.key(key), err)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key(key), err)
	}

	return c.client.Set(ctx, c.key(key), data, c.client.config.TTL(c.name))
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.key(key))
}
