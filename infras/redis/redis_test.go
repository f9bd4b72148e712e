package redis_test

import (
	"testing"
	"time"
	"wbrent/config"
	"wbrent/infras/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache.internal"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.DB = 2
	cfg.Cache.Redis.DialTimeoutSeconds = 5
	cfg.Cache.Redis.IOTimeoutSeconds = 3

	options := redis.Options(cfg)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, 5*time.Second, options.DialTimeout)
	assert.Equal(t, 3*time.Second, options.ReadTimeout)
	assert.Equal(t, 3*time.Second, options.WriteTimeout)
	assert.Nil(t, options.TLSConfig)

	cfg.Cache.Redis.Primary.TLS = true

	options = redis.Options(cfg)
	require.NotNil(t, options.TLSConfig)
	assert.Equal(t, "cache.internal", options.TLSConfig.ServerName)
}
