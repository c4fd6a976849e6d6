package config

import (
	"time"
)

// Config is the root application configuration, shared by the bot and
// analyzer binaries.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Vault    VaultConfig    `yaml:"vault"`
	Telegram TelegramConfig `yaml:"telegram"`
	Line     LineConfig     `yaml:"line"`
	OCR      OCRConfig      `yaml:"ocr"`
	LLM      LLMConfig      `yaml:"llm"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings for the analyzer service and
// the LINE webhook endpoint.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"20"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// VaultConfig holds the deployment secret the credential vault derives its
// encryption key from. The process must not start without it.
type VaultConfig struct {
	Secret string `yaml:"secret" env:"VAULT_SECRET" env-required:"true"`
}

// TelegramConfig holds Telegram bot settings. Token is validated by the bot
// binary, not here, so the analyzer can run without it.
type TelegramConfig struct {
	Token       string        `yaml:"token"        env:"TELEGRAM_BOT_TOKEN"`
	PollTimeout time.Duration `yaml:"poll_timeout" env:"TELEGRAM_POLL_TIMEOUT" env-default:"60s"`
}

// LineConfig holds LINE messaging API settings. Both values are validated by
// the bot binary when the LINE adapter is enabled.
type LineConfig struct {
	ChannelSecret string `yaml:"channel_secret" env:"LINE_CHANNEL_SECRET"`
	ChannelToken  string `yaml:"channel_token"  env:"LINE_CHANNEL_ACCESS_TOKEN"`
	WebhookPath   string `yaml:"webhook_path"   env:"LINE_WEBHOOK_PATH" env-default:"/webhook"`
}

// OCRConfig holds text-extraction settings.
type OCRConfig struct {
	Languages string        `yaml:"languages" env:"OCR_LANGUAGES" env-default:"chi_tra+eng"`
	Timeout   time.Duration `yaml:"timeout"   env:"OCR_TIMEOUT"   env-default:"60s"`
	// UpscaleFactor is applied before binarization to improve recognition
	// of small menu print.
	UpscaleFactor float64 `yaml:"upscale_factor" env:"OCR_UPSCALE_FACTOR" env-default:"2.0"`
}

// LLMConfig holds settings for the three-stage Gemini pipeline.
type LLMConfig struct {
	Model        string        `yaml:"model"         env:"LLM_MODEL"         env-default:"gemini-2.5-flash"`
	Temperature  float32       `yaml:"temperature"   env:"LLM_TEMPERATURE"   env-default:"0.3"`
	StageTimeout time.Duration `yaml:"stage_timeout" env:"LLM_STAGE_TIMEOUT" env-default:"90s"`
}

// AnalyzerConfig holds the bot-side client settings for the analysis service.
type AnalyzerConfig struct {
	URL     string        `yaml:"url"     env:"ANALYZER_URL"     env-default:"http://menu-analysis:8000"`
	Timeout time.Duration `yaml:"timeout" env:"ANALYZER_TIMEOUT" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
