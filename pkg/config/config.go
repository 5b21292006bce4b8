package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Mail      MailConfig
	Alerts    AlertsConfig
	Scheduler SchedulerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env           string // development, staging, production
	Name          string
	LogLevel      string
	StorageDriver string // postgres | memory
	UploadsDir    string
	FrontendURL   string
	// Location zona horaria del negocio: límites de "hoy" y disparo del cron.
	Location *time.Location
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de tokens. RefreshSecret cae en Secret si no se define.
type JWTConfig struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	ResetTTL      time.Duration
	Issuer        string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MailConfig credenciales SMTP. Host vacío = los correos solo se registran en el log.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled indica si hay un servidor SMTP configurado.
func (c MailConfig) Enabled() bool { return c.Host != "" }

// AlertsConfig umbrales de las alertas automáticas.
type AlertsConfig struct {
	LowStockThreshold decimal.Decimal
}

// SchedulerConfig expresiones cron (evaluadas en App.Location).
type SchedulerConfig struct {
	SummaryCron    string
	AlertSweepCron string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, SMTP_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	tzName := getString(v, "BUSINESS_TIMEZONE", "Asia/Kolkata")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("config: BUSINESS_TIMEZONE %q: %w", tzName, err)
	}

	threshold, err := decimal.NewFromString(getString(v, "LOW_STOCK_THRESHOLD", "100"))
	if err != nil {
		return nil, fmt.Errorf("config: LOW_STOCK_THRESHOLD: %w", err)
	}

	secret := getString(v, "JWT_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}

	cfg := &Config{
		App: AppConfig{
			Env:           getString(v, "APP_ENV", "development"),
			Name:          getString(v, "APP_NAME", "stonecrusher-api"),
			LogLevel:      getString(v, "LOG_LEVEL", "info"),
			StorageDriver: getString(v, "STORAGE_DRIVER", "postgres"),
			UploadsDir:    getString(v, "UPLOADS_DIR", "./uploads"),
			FrontendURL:   strings.TrimRight(getString(v, "FRONTEND_URL", "http://localhost:5173"), "/"),
			Location:      loc,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "stonecrusher"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:        secret,
			RefreshSecret: getString(v, "JWT_REFRESH_SECRET", secret),
			AccessTTL:     minutes(getInt(v, "JWT_ACCESS_TTL_MINUTES", 24*60)),
			RefreshTTL:    minutes(getInt(v, "JWT_REFRESH_TTL_MINUTES", 7*24*60)),
			ResetTTL:      minutes(getInt(v, "JWT_RESET_TTL_MINUTES", 60)),
			Issuer:        getString(v, "JWT_ISSUER", "stonecrusher-api"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 3000),
			AllowedOrigins: splitList(getString(v, "CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		Mail: MailConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", "no-reply@stonecrusher.local"),
		},
		Alerts: AlertsConfig{
			LowStockThreshold: threshold,
		},
		Scheduler: SchedulerConfig{
			SummaryCron:    getString(v, "SUMMARY_CRON", "0 21 * * *"),
			AlertSweepCron: getString(v, "ALERT_SWEEP_CRON", "*/30 * * * *"),
		},
	}

	return cfg, nil
}

func minutes(n int) time.Duration { return time.Duration(n) * time.Minute }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
