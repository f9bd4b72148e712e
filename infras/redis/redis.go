package redis

import (
	"context"
	"crypto/tls"
	"net"
	"time"
	"wbrent/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Options maps the primary Redis settings onto client options. Managed
// Redis offerings usually require TLS, which CACHE_REDIS_PRIMARY_TLS turns on.
func Options(cfg *config.Config) *goRedis.Options {
	redisCfg := cfg.Cache.Redis
	ioTimeout := time.Duration(redisCfg.IOTimeoutSeconds) * time.Second

	options := &goRedis.Options{
		Addr:         net.JoinHostPort(redisCfg.Primary.Host, redisCfg.Primary.Port),
		Password:     redisCfg.Primary.Password,
		DB:           redisCfg.Primary.DB,
		DialTimeout:  time.Duration(redisCfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	}

	if redisCfg.Primary.TLS {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: redisCfg.Primary.Host,
		}
	}

	return options
}

func New(cfg *config.Config) *goRedis.Client {
	options := Options(cfg)
	client := goRedis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), options.DialTimeout+options.ReadTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", options.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", options.DB).
		Str("addr", options.Addr).
		Bool("tls", options.TLSConfig != nil).
		Msg("Connected to Redis")

	return client
}
