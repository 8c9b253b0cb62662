package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	GA4         GA4         `mapstructure:",squash"`
	ResultCache ResultCache `mapstructure:",squash"`
	CVRefresh   CVRefresh   `mapstructure:",squash"`
	CVDefaults  CVDefaults  `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// GA4 agrupa as configurações do feed automatizado (Google Analytics Data API)
type GA4 struct {
	CredentialsFile     string        `mapstructure:"ga4_credentials_file"`
	Endpoint            string        `mapstructure:"ga4_endpoint"`
	RequestTimeout      time.Duration `mapstructure:"ga4_request_timeout"`
	RateLimitPerMinute  int           `mapstructure:"ga4_rate_limit_per_minute"`
	RateLimitSleep      time.Duration `mapstructure:"ga4_rate_limit_sleep"`
	RateLimitMaxRetries int           `mapstructure:"ga4_rate_limit_max_retries"`
	DailyCountsTTL      time.Duration `mapstructure:"ga4_daily_counts_ttl"`
	SettleDays          int           `mapstructure:"ga4_settle_days"`
	PageDimensionLimit  int64         `mapstructure:"ga4_page_dimension_limit"`
}

type ResultCache struct {
	TTL             time.Duration `mapstructure:"result_cache_ttl"`
	CleanupInterval time.Duration `mapstructure:"result_cache_cleanup_interval"`
}

type CVRefresh struct {
	CronSchedule    string        `mapstructure:"cv_refresh_cron"`
	Enabled         bool          `mapstructure:"cv_refresh_enabled"`
	ChunkSize       int           `mapstructure:"cv_refresh_chunk_size"`
	FollowUpDelay   time.Duration `mapstructure:"cv_refresh_followup_delay"`
	LockTTL         time.Duration `mapstructure:"cv_refresh_lock_ttl"`
	MonthLookBack   int           `mapstructure:"cv_refresh_month_lookback"`
	SnapshotMonths  int           `mapstructure:"cv_refresh_snapshot_retention_months"`
	ResumeOnStartup bool          `mapstructure:"cv_refresh_resume_on_startup"`
}

type CVDefaults struct {
	PhoneEventName string `mapstructure:"default_phone_event_name"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cv_report")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GA4_CREDENTIALS_FILE", "")
	viper.SetDefault("GA4_ENDPOINT", "")
	viper.SetDefault("GA4_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("GA4_RATE_LIMIT_PER_MINUTE", 50) // teto suave por minuto
	viper.SetDefault("GA4_RATE_LIMIT_SLEEP", "5s")
	viper.SetDefault("GA4_RATE_LIMIT_MAX_RETRIES", 6)
	viper.SetDefault("GA4_DAILY_COUNTS_TTL", "3h")
	viper.SetDefault("GA4_SETTLE_DAYS", 3) // o GA4 ainda ajusta os últimos dias
	viper.SetDefault("GA4_PAGE_DIMENSION_LIMIT", 50)

	viper.SetDefault("RESULT_CACHE_TTL", "2h")
	viper.SetDefault("RESULT_CACHE_CLEANUP_INTERVAL", "10m")

	// Defaults para o recálculo encadeado dos resultados de CV
	viper.SetDefault("CV_REFRESH_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("CV_REFRESH_ENABLED", false)
	viper.SetDefault("CV_REFRESH_CHUNK_SIZE", 5)
	viper.SetDefault("CV_REFRESH_FOLLOWUP_DELAY", "30s")
	viper.SetDefault("CV_REFRESH_LOCK_TTL", "10m")
	viper.SetDefault("CV_REFRESH_MONTH_LOOKBACK", 1)
	viper.SetDefault("CV_REFRESH_SNAPSHOT_RETENTION_MONTHS", 24)
	viper.SetDefault("CV_REFRESH_RESUME_ON_STARTUP", true)

	viper.SetDefault("DEFAULT_PHONE_EVENT_NAME", "phone_tap")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate garante limites mínimos para valores que controlam laços e esperas
func (c *Config) Validate() error {
	if c.CVRefresh.ChunkSize <= 0 {
		return fmt.Errorf("CV_REFRESH_CHUNK_SIZE deve ser maior que zero: %d", c.CVRefresh.ChunkSize)
	}

	if c.GA4.RateLimitPerMinute <= 0 {
		return fmt.Errorf("GA4_RATE_LIMIT_PER_MINUTE deve ser maior que zero: %d", c.GA4.RateLimitPerMinute)
	}

	if c.GA4.RateLimitMaxRetries < 0 {
		c.GA4.RateLimitMaxRetries = 0
	}

	if c.CVRefresh.MonthLookBack < 0 {
		c.CVRefresh.MonthLookBack = 0
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
