package translations

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix  = "translations:"
	redisModulesKey = redisKeyPrefix + "modules"
)

// RedisProvider reads the catalog from Redis. Module names live in the set
// "translations:modules" and each module's strings in hashes keyed
// "translations:<module>:<lang>", populated by external tooling.
type RedisProvider struct {
	client redis.UniversalClient
}

// NewRedisProvider creates a provider over the given Redis client.
func NewRedisProvider(client redis.UniversalClient) *RedisProvider {
	return &RedisProvider{client: client}
}

// All implements Provider. The catalog is fetched fresh on every call.
func (p *RedisProvider) All(ctx context.Context) (Catalog, error) {
	names, err := p.client.SMembers(ctx, redisModulesKey).Result()
	if err != nil {
		return nil, err
	}

	catalog := make(Catalog, len(names))
	for _, name := range names {
		module := make(map[Language]map[string]string, len(Supported()))
		for _, lang := range Supported() {
			strings, err := p.client.HGetAll(ctx, moduleKey(name, lang)).Result()
			if err != nil {
				return nil, err
			}
			if len(strings) > 0 {
				module[lang] = strings
			}
		}
		catalog[name] = module
	}

	return catalog, nil
}

// Module implements Provider.
func (p *RedisProvider) Module(ctx context.Context, name string, lang Language) (map[string]string, error) {
	strings, err := p.client.HGetAll(ctx, moduleKey(name, lang)).Result()
	if err != nil {
		return nil, err
	}
	if len(strings) == 0 {
		return nil, nil
	}
	return strings, nil
}

func moduleKey(name string, lang Language) string {
	return redisKeyPrefix + name + ":" + string(lang)
}
