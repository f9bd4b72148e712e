package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"
	"wbrent/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Connection holds the primary used for writes and the replica used for reads.
// Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the read/write split.
type Endpoint struct {
	Role     string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	Timezone string
	SSLMode  string
}

// DSN renders the endpoint as a lib/pq URL. Credentials are escaped and the
// session timezone is passed as a startup option.
func (e Endpoint) DSN() string {
	query := url.Values{}

	sslMode := e.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	query.Set("sslmode", sslMode)

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  Connect(ReadEndpoint(cfg), cfg),
		Write: Connect(WriteEndpoint(cfg), cfg),
	}
}

func databaseName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

func WriteEndpoint(cfg *config.Config) Endpoint {
	write := cfg.DB.Postgres.Write

	return Endpoint{
		Role:     "write",
		Host:     write.Host,
		Port:     write.Port,
		Username: write.Username,
		Password: write.Password,
		Name:     databaseName(cfg, write.Name),
		Timezone: firstNonEmpty(write.Timezone, cfg.App.Timezone),
		SSLMode:  write.SSLMode,
	}
}

func ReadEndpoint(cfg *config.Config) Endpoint {
	read := cfg.DB.Postgres.Read

	return Endpoint{
		Role:     "read",
		Host:     read.Host,
		Port:     read.Port,
		Username: read.Username,
		Password: read.Password,
		Name:     databaseName(cfg, read.Name),
		Timezone: firstNonEmpty(read.Timezone, cfg.App.Timezone),
		SSLMode:  read.SSLMode,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}

// Connect retries until the server answers or MaxRetry attempts have failed,
// in which case the process exits.
func Connect(endpoint Endpoint, cfg *config.Config) *sqlx.DB {
	maxRetry := max(cfg.DB.Postgres.MaxRetry, 1)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	var lastErr error

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", endpoint.DSN())
		if err == nil {
			db.SetMaxOpenConns(cfg.DB.Postgres.MaxOpenConns)
			db.SetMaxIdleConns(cfg.DB.Postgres.MaxIdleConns)

			log.Info().
				Str("role", endpoint.Role).
				Str("host", endpoint.Host).
				Str("dbName", endpoint.Name).
				Msg("Connected to database")

			return db
		}

		lastErr = err

		log.Warn().
			Err(err).
			Str("role", endpoint.Role).
			Str("host", endpoint.Host).
			Int("attempt", attempt).
			Int("maxRetry", maxRetry).
			Msg("Failed connecting to database")

		if attempt < maxRetry {
			time.Sleep(wait)
		}
	}

	log.Fatal().Err(lastErr).Str("role", endpoint.Role).Msg("Giving up connecting to database")

	return nil
}
