package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/syrene4545/attendance-tracker-sub001/internal/shared/connection"
)

type Config struct {
	AppEnv string
	Port   string

	Postgres    connection.PostgresConfig
	RedisAddr   string
	KafkaBroker string

	JWT        JWTConfig
	Attendance AttendanceConfig
	Leave      LeaveConfig
	Assessment AssessmentConfig

	PayrollRulesFile string
	RBACModelPath    string
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type AttendanceConfig struct {
	WorkStartHour   int
	WorkStartMinute int
	GraceMinutes    int
	Location        *time.Location
}

type LeaveConfig struct {
	AnnualQuota int
}

type AssessmentConfig struct {
	Grace time.Duration
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can supply their own environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	p := parser{getenv: getenv}

	cfg := &Config{
		AppEnv: p.str("APP_ENV", "development"),
		Port:   p.str("PORT", "3000"),
		Postgres: connection.PostgresConfig{
			Host:     p.str("DB_HOST", "localhost"),
			User:     p.str("DB_USER", "postgres"),
			Password: p.str("DB_PASSWORD", ""),
			Name:     p.str("DB_NAME", "attendance"),
			Port:     p.str("DB_PORT", "5432"),
			SSLMode:  p.str("DB_SSLMODE", "disable"),
		},
		RedisAddr:   p.str("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: p.str("KAFKA_BROKER", ""),
		JWT: JWTConfig{
			Secret:     p.str("JWT_SECRET", ""),
			AccessTTL:  p.duration("JWT_ACCESS_TTL", 15*time.Minute),
			RefreshTTL: p.duration("JWT_REFRESH_TTL", 7*24*time.Hour),
		},
		Attendance: AttendanceConfig{
			GraceMinutes: p.integer("ATTENDANCE_GRACE_MINUTES", 15),
		},
		Leave: LeaveConfig{
			AnnualQuota: p.integer("LEAVE_ANNUAL_QUOTA", 12),
		},
		Assessment: AssessmentConfig{
			Grace: time.Duration(p.integer("ASSESSMENT_GRACE_SECONDS", 30)) * time.Second,
		},
		PayrollRulesFile: p.str("PAYROLL_RULES_FILE", "config/payroll_rules.yaml"),
		RBACModelPath:    p.str("RBAC_MODEL_PATH", "config/rbac_model.conf"),
	}

	cfg.Attendance.WorkStartHour, cfg.Attendance.WorkStartMinute = p.clock("ATTENDANCE_WORK_START", "09:00")
	cfg.Attendance.Location = p.location("ATTENDANCE_TIMEZONE", "UTC")

	if p.err != nil {
		return nil, p.err
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Attendance.GraceMinutes < 0 {
		return nil, fmt.Errorf("ATTENDANCE_GRACE_MINUTES must not be negative")
	}
	if cfg.Leave.AnnualQuota < 0 {
		return nil, fmt.Errorf("LEAVE_ANNUAL_QUOTA must not be negative")
	}

	return cfg, nil
}

// parser keeps the first conversion error so Load can report it once.
type parser struct {
	getenv func(string) string
	err    error
}

func (p *parser) raw(key string) (string, bool) {
	v := strings.TrimSpace(p.getenv(key))
	return v, v != ""
}

func (p *parser) str(key, def string) string {
	if v, ok := p.raw(key); ok {
		return v
	}
	return def
}

func (p *parser) fail(key, v string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
}

func (p *parser) integer(key string, def int) int {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return def
	}
	return d
}

func (p *parser) clock(key, def string) (int, int) {
	v := p.str(key, def)
	t, err := time.Parse("15:04", v)
	if err != nil {
		p.fail(key, v, err)
		return 9, 0
	}
	return t.Hour(), t.Minute()
}

func (p *parser) location(key, def string) *time.Location {
	v := p.str(key, def)
	loc, err := time.LoadLocation(v)
	if err != nil {
		p.fail(key, v, err)
		return time.UTC
	}
	return loc
}
