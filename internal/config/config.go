package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	HTTPAddr    string
	DatabaseURL string

	// CSV of allowed browser origins; empty means allow all.
	AllowedOrigins []string

	// Email / SMTP
	EmailSender string // "smtp" or "fake"

	AdminEmail    string // sender identity, also the CC/fallback recipient
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPTimeout   time.Duration
	SMTPInsecure  bool
	HRRecipients  []string // CSV RECEIVER_EMAIL, falls back to AdminEmail
	SenderDisplay string   // display name on outgoing mail

	// Settings admin shared secrets
	AdminUser string
	AdminPass string

	// Uploads
	UploadDir     string
	MaxUploadSize int64

	// Rate limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	ShutdownWait     time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":5000")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")

	cfg.AllowedOrigins = splitCSV(getEnv("ALLOWED_ORIGINS", ""))

	cfg.EmailSender = getEnv("EMAIL_SENDER", "fake")
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	cfg.SMTPPort = getInt("SMTP_PORT", 465)
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", cfg.AdminEmail)
	// Gmail app passwords are often pasted with spaces; strip them.
	cfg.SMTPPassword = strings.ReplaceAll(getEnv("ADMIN_EMAIL_PASSWORD", ""), " ", "")
	cfg.SMTPTimeout = getDuration("SMTP_TIMEOUT", 10*time.Second)
	cfg.SMTPInsecure = getBool("SMTP_INSECURE", false)
	cfg.SenderDisplay = getEnv("MAIL_SENDER_NAME", "Autism ABA Partners")

	cfg.HRRecipients = splitCSV(getEnv("RECEIVER_EMAIL", ""))
	if len(cfg.HRRecipients) == 0 && cfg.AdminEmail != "" {
		cfg.HRRecipients = []string{cfg.AdminEmail}
	}

	cfg.AdminUser = getEnv("ADMIN_USER", "")
	cfg.AdminPass = getEnv("ADMIN_PASS", "")

	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	cfg.MaxUploadSize = int64(getInt("MAX_UPLOAD_SIZE", 5<<20))

	cfg.RLEnabled = getBool("RL_ENABLED", true)
	cfg.RLLimit = getInt("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	cfg.ShutdownWait = getDuration("SHUTDOWN_WAIT", 10*time.Second)

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing required env var: DATABASE_URL")
	}
	if cfg.EmailSender == "smtp" {
		if cfg.AdminEmail == "" || cfg.SMTPPassword == "" {
			return nil, fmt.Errorf("smtp sender selected but missing ADMIN_EMAIL / ADMIN_EMAIL_PASSWORD")
		}
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func splitCSV(s string) []string {
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, x := range raw {
		x = strings.TrimSpace(x)
		if x != "" {
			out = append(out, x)
		}
	}
	return out
}
