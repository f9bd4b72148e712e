package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env                 string `envconfig:"ENV"`
		LogLevel            string `envconfig:"LOG_LEVEL"`
		Port                string `envconfig:"PORT"`
		Host                string `envconfig:"HOST"`
		ReadTimeoutSeconds  int    `envconfig:"READ_TIMEOUT_SECONDS"  default:"15"`
		WriteTimeoutSeconds int    `envconfig:"WRITE_TIMEOUT_SECONDS" default:"30"`
		Shutdown            struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE" default:"Europe/Warsaw"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
				TLS      bool   `envconfig:"TLS"`
			} `envconfig:"PRIMARY"`
			DialTimeoutSeconds int `envconfig:"DIAL_TIMEOUT_SECONDS" default:"5"`
			IOTimeoutSeconds   int `envconfig:"IO_TIMEOUT_SECONDS"   default:"3"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry        int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime   int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS"  default:"10"`
			MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS"  default:"10"`
			MigrationTable  string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			MigrationSource string `envconfig:"MIGRATION_SOURCE" default:"file://migrations/postgres"`
			AutoMigrate     bool   `envconfig:"AUTO_MIGRATE"`
			Prefix          string `envconfig:"PREFIX"`
			Read            struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Pricing struct {
		DeliveryUnitFee int64  `envconfig:"DELIVERY_UNIT_FEE" default:"2500"`
		Currency        string `envconfig:"CURRENCY"          default:"PLN"`
	} `envconfig:"PRICING"`

	Delivery struct {
		DepotLatitude  float64 `envconfig:"DEPOT_LATITUDE"  default:"50.0412"`
		DepotLongitude float64 `envconfig:"DEPOT_LONGITUDE" default:"21.9991"`
		MaxRadiusKm    float64 `envconfig:"MAX_RADIUS_KM"   default:"30"`
	} `envconfig:"DELIVERY"`

	Geocoder struct {
		BaseURL        string `envconfig:"BASE_URL"        default:"https://nominatim.openstreetmap.org"`
		UserAgent      string `envconfig:"USER_AGENT"      default:"wbrent-backend"`
		CountryCodes   string `envconfig:"COUNTRY_CODES"   default:"pl"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"5"`
		CacheTTL       int    `envconfig:"CACHE_TTL"       default:"604800"`
	} `envconfig:"GEOCODER"`

	Mail struct {
		Enable         bool   `envconfig:"ENABLE"`
		SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
		SendGridHost   string `envconfig:"SENDGRID_HOST" default:"https://api.sendgrid.com"`
		FromEmail      string `envconfig:"FROM_EMAIL"`
		FromName       string `envconfig:"FROM_NAME"`
		AdminEmail     string `envconfig:"ADMIN_EMAIL"`
	} `envconfig:"MAIL"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"wbrent-worker"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			ReservationEvents string `envconfig:"RESERVATION_EVENTS" default:"reservation.events"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	Scheduler struct {
		PickupReminders  string `envconfig:"PICKUP_REMINDERS"    default:"0 0 9 * * *"`
		LockTTLSeconds   int    `envconfig:"LOCK_TTL_SECONDS"    default:"3600"`
		ReminderLeadDays int    `envconfig:"REMINDER_LEAD_DAYS"  default:"1"`
	} `envconfig:"SCHEDULER"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			Directory       string `envconfig:"DIRECTORY" default:"products"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
