package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// File mirrors the YAML config file. Zero values leave the default in place.
type File struct {
	Data struct {
		Source   string        `yaml:"source"`
		Table    string        `yaml:"table"`
		Watch    *bool         `yaml:"watch"`
		Debounce time.Duration `yaml:"debounce"`
	} `yaml:"data"`
	Server struct {
		Port         string        `yaml:"port"`
		Debug        *bool         `yaml:"debug"`
		RateLimitMax int           `yaml:"rate_limit_max"`
		RateLimitExp time.Duration `yaml:"rate_limit_exp"`
	} `yaml:"server"`
	Dashboard struct {
		PageSize int           `yaml:"page_size"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"dashboard"`
	Charts struct {
		Width         int `yaml:"width"`
		Height        int `yaml:"height"`
		ScatterWidth  int `yaml:"scatter_width"`
		ScatterHeight int `yaml:"scatter_height"`
	} `yaml:"charts"`
	Admin struct {
		User         string `yaml:"user"`
		PasswordHash string `yaml:"password_hash"`
	} `yaml:"admin"`
}

// Load applies the YAML file at path (if any), then .env, then the
// environment. An empty path falls back to $CO2_CONFIG and then to
// ./dashboard.yaml; a missing default file is not an error.
func Load(path string) error {
	explicit := path != ""
	if path == "" {
		path = os.Getenv("CO2_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = "dashboard.yaml"
	}

	if err := loadFile(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.Printf("[config] No config file at %s, using defaults", path)
		} else {
			return err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	return applyEnv()
}

func loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	f.apply()

	log.Printf("[config] Loaded %s", path)
	return nil
}

func (f *File) apply() {
	setString(&DataSource, f.Data.Source)
	setString(&DataTable, f.Data.Table)
	if f.Data.Watch != nil {
		DataWatch = *f.Data.Watch
	}
	setDuration(&DataDebounce, f.Data.Debounce)

	setString(&ServerPort, f.Server.Port)
	if f.Server.Debug != nil {
		ServerDebug = *f.Server.Debug
	}
	setInt(&ServerRateLimitMax, f.Server.RateLimitMax)
	setDuration(&ServerRateLimitExp, f.Server.RateLimitExp)

	setInt(&TablePageSize, f.Dashboard.PageSize)
	setDuration(&ViewCacheTTL, f.Dashboard.CacheTTL)

	setInt(&ChartWidth, f.Charts.Width)
	setInt(&ChartHeight, f.Charts.Height)
	setInt(&ScatterWidth, f.Charts.ScatterWidth)
	setInt(&ScatterHeight, f.Charts.ScatterHeight)

	setString(&AdminUser, f.Admin.User)
	setString(&AdminPasswordHash, f.Admin.PasswordHash)
}

// applyEnv reads the CO2_* variables. Unparseable values are an error so a
// typo never silently falls back to a default.
func applyEnv() error {
	setString(&DataSource, os.Getenv("CO2_DATA"))
	setString(&DataTable, os.Getenv("CO2_DATA_TABLE"))
	setString(&ServerPort, os.Getenv("CO2_PORT"))
	setString(&AdminUser, os.Getenv("CO2_ADMIN_USER"))
	setString(&AdminPasswordHash, os.Getenv("CO2_ADMIN_PASSWORD_HASH"))

	if v := os.Getenv("CO2_WATCH"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CO2_WATCH: %w", err)
		}
		DataWatch = b
	}
	if v := os.Getenv("CO2_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CO2_DEBUG: %w", err)
		}
		ServerDebug = b
	}
	if v := os.Getenv("CO2_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CO2_PAGE_SIZE: %w", err)
		}
		setInt(&TablePageSize, n)
	}
	if v := os.Getenv("CO2_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CO2_CACHE_TTL: %w", err)
		}
		setDuration(&ViewCacheTTL, d)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v > 0 {
		*dst = v
	}
}
