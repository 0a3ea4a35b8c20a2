package config

import (
	"fmt"
	"os"
	"time"

	pkgconfig "skilllink/pkg/config"
)

type AppConfig struct {
	Title        string `yaml:"title"`
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type Config struct {
	App    AppConfig              `yaml:"app"`
	DB     pkgconfig.DBConfig     `yaml:"db"`
	Server pkgconfig.ServerConfig `yaml:"server"`
	MQ     pkgconfig.MQConfig     `yaml:"mq"`
	Log    pkgconfig.LogConfig    `yaml:"log"`
}

// Default mirrors config/base.yaml so a missing key never yields a zero port.
func Default() Config {
	return Config{
		App: AppConfig{
			Title:        "SkillLink - Freelancer Marketplace",
			Version:      "1.0.0",
			WindowWidth:  1200,
			WindowHeight: 700,
		},
		DB: pkgconfig.DBConfig{
			Host:               "localhost",
			Port:               5432,
			User:               "postgres",
			Name:               "skilllink",
			SSLMode:            "disable",
			ConnectTimeout:     5 * time.Second,
			SlowQueryThreshold: 100 * time.Millisecond,
		},
		Server: pkgconfig.ServerConfig{Port: "127.0.0.1:8080"},
		Log:    pkgconfig.LogConfig{Level: "info"},
	}
}

// Load reads the layered config from dir for env and applies environment
// overrides. An empty dir falls back to CONFIG_DIR, then "config".
func Load(env, dir string) (*Config, error) {
	if dir == "" {
		dir = pkgconfig.GetEnv("CONFIG_DIR", "config")
	}

	raw, err := pkgconfig.LoadConfig(env, dir)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := pkgconfig.Decode(raw, &cfg); err != nil {
		return nil, err
	}

	pkgconfig.OverrideDBFromEnv(&cfg.DB)
	pkgconfig.OverrideServerFromEnv(&cfg.Server)
	pkgconfig.OverrideMQFromEnv(&cfg.MQ)
	pkgconfig.OverrideLogFromEnv(&cfg.Log)

	if cfg.DB.Host == "" || cfg.DB.Name == "" {
		return nil, fmt.Errorf("config: db.host and db.name are required")
	}
	return &cfg, nil
}

// MustLoad is Load for process entry points.
func MustLoad() *Config {
	cfg, err := Load(pkgconfig.GetConfigEnv(), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
