package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/config"
)

// SiteConfig points at the storefront this notifier serves. The mail From
// address is derived from the site URL host; order links use the admin URL.
type SiteConfig struct {
	URL      string `yaml:"url"`
	AdminURL string `yaml:"admin_url"`
}

// NotificationConfig controls the recipient set. SendToAdmins pulls in every
// administrator account on top of the fixed recipient list.
type NotificationConfig struct {
	SendToAdmins bool     `yaml:"send_to_admins"`
	Recipients   []string `yaml:"recipients"`
}

// DigestConfig controls the daily summary schedule (cron syntax, UTC).
type DigestConfig struct {
	Schedule string `yaml:"schedule"`
}

type Config struct {
	DB            config.DBConfig     `yaml:"db"`
	Redis         config.RedisConfig  `yaml:"redis"`
	MQ            config.MQConfig     `yaml:"mq"`
	SMTP          config.SMTPConfig   `yaml:"smtp"`
	JWT           config.JWTConfig    `yaml:"jwt"`
	Server        config.ServerConfig `yaml:"server"`
	Site          SiteConfig          `yaml:"site"`
	Notifications NotificationConfig  `yaml:"notifications"`
	Digest        DigestConfig        `yaml:"digest"`
}

func Load() *Config {
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var cfg Config
	cfgData, err := yaml.Marshal(cfgMap)
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	// Environment overrides take highest priority.
	config.OverrideDBFromEnv(&cfg.DB)
	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideMQFromEnv(&cfg.MQ)
	config.OverrideSMTPFromEnv(&cfg.SMTP)
	config.OverrideJWTFromEnv(&cfg.JWT)
	config.OverrideServerFromEnv(&cfg.Server)

	if cfg.Digest.Schedule == "" {
		cfg.Digest.Schedule = "0 7 * * *" // 07:00 UTC daily
	}

	return &cfg
}
