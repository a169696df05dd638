package translations_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausaware/langswitch/pkg/translations"
)

// fakeRedis stubs the two commands the provider issues. The embedded
// interface panics on anything else, keeping the command surface honest.
type fakeRedis struct {
	redis.UniversalClient

	sets   map[string][]string
	hashes map[string]map[string]string
	err    error
}

func (f *fakeRedis) SMembers(_ context.Context, key string) *redis.StringSliceCmd {
	if f.err != nil {
		return redis.NewStringSliceResult(nil, f.err)
	}
	return redis.NewStringSliceResult(f.sets[key], nil)
}

func (f *fakeRedis) HGetAll(_ context.Context, key string) *redis.MapStringStringCmd {
	if f.err != nil {
		return redis.NewMapStringStringResult(nil, f.err)
	}
	return redis.NewMapStringStringResult(f.hashes[key], nil)
}

func seededRedis() *fakeRedis {
	return &fakeRedis{
		sets: map[string][]string{
			"translations:modules": {"billing", "reports"},
		},
		hashes: map[string]map[string]string{
			"translations:billing:en": {"x": "A"},
			"translations:billing:ha": {"x": "A-ha"},
			"translations:reports:en": {"x": "B", "y": "C"},
		},
	}
}

func TestRedisProvider_All(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles the catalog from set and hashes", func(t *testing.T) {
		provider := translations.NewRedisProvider(seededRedis())

		catalog, err := provider.All(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"billing", "reports"}, catalog.ModuleNames())
		assert.Equal(t, map[string]string{"x": "A"}, catalog.ForLanguage("billing", translations.English))
		assert.Equal(t, map[string]string{"x": "A-ha"}, catalog.ForLanguage("billing", translations.Hausa))
		assert.Equal(t, map[string]string{"x": "B", "y": "C"}, catalog.ForLanguage("reports", translations.English))
	})

	t.Run("module without strings for a language is omitted", func(t *testing.T) {
		provider := translations.NewRedisProvider(seededRedis())

		catalog, err := provider.All(ctx)
		require.NoError(t, err)

		assert.Nil(t, catalog.ForLanguage("reports", translations.Hausa))
	})

	t.Run("propagates command errors", func(t *testing.T) {
		provider := translations.NewRedisProvider(&fakeRedis{err: errors.New("connection refused")})

		_, err := provider.All(ctx)
		assert.Error(t, err)
	})
}

func TestRedisProvider_Module(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the module hash", func(t *testing.T) {
		provider := translations.NewRedisProvider(seededRedis())

		strings, err := provider.Module(ctx, "reports", translations.English)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"x": "B", "y": "C"}, strings)
	})

	t.Run("absent module yields empty result without error", func(t *testing.T) {
		provider := translations.NewRedisProvider(seededRedis())

		strings, err := provider.Module(ctx, "payroll", translations.English)
		require.NoError(t, err)
		assert.Empty(t, strings)
	})

	t.Run("propagates command errors", func(t *testing.T) {
		provider := translations.NewRedisProvider(&fakeRedis{err: errors.New("connection refused")})

		_, err := provider.Module(ctx, "billing", translations.English)
		assert.Error(t, err)
	})
}
