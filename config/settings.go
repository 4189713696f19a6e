package config

import (
	"strings"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Settings is the typed view of the environment used by main and the api package.
type Settings struct {
	Host            string
	Port            string
	DBPath          string
	AppEnv          string
	StaticDir       string
	DevServerURL    string
	AcceptedOrigins []string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	GenerateColumnReport bool

	Email EmailSettings
	SMS   SMSSettings
}

// EmailSettings configures contact notifications through Resend.
type EmailSettings struct {
	APIKey     string
	From       string
	Recipients []string
}

func (s EmailSettings) Enabled() bool {
	return s.APIKey != "" && s.From != "" && len(s.Recipients) > 0
}

// SMSSettings configures contact notifications through Twilio.
type SMSSettings struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

func (s SMSSettings) Enabled() bool {
	return s.AccountSID != "" && s.AuthToken != "" && s.From != "" && s.To != ""
}

// Load reads Settings from the process environment.
func Load() Settings {
	return FromMap(New())
}

// FromMap builds Settings from an environment snapshot.
func FromMap(c map[string]string) Settings {
	return Settings{
		Host:            GetString(c, "HOST", "0.0.0.0"),
		Port:            GetString(c, "PORT", "3000"),
		DBPath:          GetString(c, "DB_PATH", "portfolio.db"),
		AppEnv:          strings.ToLower(GetString(c, "APP_ENV", EnvDevelopment)),
		StaticDir:       GetString(c, "STATIC_DIR", "dist"),
		DevServerURL:    GetString(c, "DEV_SERVER_URL", ""),
		AcceptedOrigins: GetStrings(c, "ACCEPTED_ORIGINS", []string{"*"}),

		ReadTimeout:     GetSeconds(c, "READ_TIMEOUT_SECONDS", 15),
		WriteTimeout:    GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 15),
		IdleTimeout:     GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 60),
		ShutdownTimeout: GetSeconds(c, "SHUTDOWN_TIMEOUT_SECONDS", 30),

		LogLevel:  GetString(c, "LOG_LEVEL", "info"),
		LogFormat: GetString(c, "LOG_FORMAT", "console"),

		GenerateColumnReport: GetBool(c, "GENERATE_COLUMN_REPORT", false),

		Email: EmailSettings{
			APIKey:     GetString(c, "RESEND_API_KEY", ""),
			From:       GetString(c, "RESEND_FROM_EMAIL", ""),
			Recipients: GetStrings(c, "CONTACT_NOTIFY_EMAILS", nil),
		},
		SMS: SMSSettings{
			AccountSID: GetString(c, "TWILIO_ACCOUNT_SID", ""),
			AuthToken:  GetString(c, "TWILIO_AUTH_TOKEN", ""),
			From:       GetString(c, "TWILIO_FROM_NUMBER", ""),
			To:         GetString(c, "CONTACT_NOTIFY_PHONE", ""),
		},
	}
}

func (s Settings) IsProduction() bool {
	return s.AppEnv == EnvProduction
}

// Address is the host:port the HTTP server binds to.
func (s Settings) Address() string {
	return s.Host + ":" + s.Port
}
