package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/eca"
)

type Config struct {
	Env           string
	Addr          string
	DBPath        string
	LogMode       string
	PublicBaseURL string
	CatalogFiles  map[catalog.Campus]string
	Pricing       eca.Pricing
}

// Load reads configuration from defaults, an optional config/.env.<env>
// file and <ENV>_-prefixed environment variables (DEV_ADDR, PROD_DBPATH, ...).
func Load() (*Config, error) {
	return load(os.Getenv("ENV"), mustGetwd())
}

func load(env, workdir string) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("addr", ":8080")
	v.SetDefault("dbPath", "ecaplanner.db")
	v.SetDefault("logMode", "dev")
	v.SetDefault("publicBaseURL", "http://localhost:8080")
	v.SetDefault("catalogDir", "data")
	v.SetDefault("catalogChaofa", "eca_data.json")
	v.SetDefault("catalogCherngtalay", "eca_data_cherngtalay.json")
	v.SetDefault("pricing.freeSlots", eca.FreeSlots)
	v.SetDefault("pricing.extraFee", eca.ExtraFee)
	v.SetDefault("pricing.ealFee", eca.EALFee)

	env = strings.ToUpper(strings.TrimSpace(env)) // DEV (default), TEST, PROD
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		v.SetDefault("logMode", "test")
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workdir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, fmt.Errorf("config.godotenv(%s): %w", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config.os.Stat(%s): %w", dotEnvPath, err)
	}
	v.AutomaticEnv()

	dir := v.GetString("catalogDir")
	cfg := &Config{
		Env:           env,
		Addr:          v.GetString("addr"),
		DBPath:        v.GetString("dbPath"),
		LogMode:       v.GetString("logMode"),
		PublicBaseURL: strings.TrimRight(v.GetString("publicBaseURL"), "/"),
		CatalogFiles: map[catalog.Campus]string{
			catalog.Chaofa:      resolve(dir, v.GetString("catalogChaofa")),
			catalog.Cherngtalay: resolve(dir, v.GetString("catalogCherngtalay")),
		},
		Pricing: eca.Pricing{
			FreeSlots: v.GetInt("pricing.freeSlots"),
			ExtraFee:  v.GetInt("pricing.extraFee"),
			EALFee:    v.GetInt("pricing.ealFee"),
		},
	}
	if cfg.Pricing.FreeSlots < 0 || cfg.Pricing.ExtraFee < 0 || cfg.Pricing.EALFee < 0 {
		return nil, fmt.Errorf("config: pricing values must not be negative: %+v", cfg.Pricing)
	}
	return cfg, nil
}

func resolve(dir, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
