package cache

import (
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

// NewRedisClient builds the redis client backing the todo cache from app.cache.redis
func NewRedisClient() (*redis.Client, error) {
	cacheName := resource.GetString("app.cache.name")

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.cache.redis.host")).
		WithPort(resource.GetInt("app.cache.redis.port")).
		WithPassword(resource.GetString("app.cache.redis.password")).
		WithDatabase(resource.GetInt("app.cache.redis.database")).
		WithCacheTTL(cacheName, resource.GetDuration("app.cache.ttl"))

	return redis.NewClient(config)
}

// NewTodoCache returns the named cache used for todos
func NewTodoCache(client *redis.Client) *redis.Cache {
	return redis.NewCache(client, resource.GetString("app.cache.name"))
}
