package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	JWT       JWTConfig
	Lotto     LottoConfig
	Generator GeneratorConfig
	Scheduler SchedulerConfig
	Admin     AdminConfig
	LogLevel  string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	StaticDir      string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// LottoConfig holds upstream draw API and history cache configuration
type LottoConfig struct {
	BaseURL      string
	MockAPI      bool
	HistorySize  int // draws in the analysis window
	SeedRound    int // lowest round the refresh probe starts from
	MaxNewRounds int // cap on rounds fetched per refresh
}

// GeneratorConfig holds candidate generation configuration
type GeneratorConfig struct {
	Attempts          int     // random candidates tried per returned set
	TargetScore       float64 // early-exit threshold
	SetsPerRequest    int
	MaxSetsPerRequest int
}

// SchedulerConfig holds cron refresh configuration
type SchedulerConfig struct {
	Enabled     bool
	RefreshCron string
}

// AdminConfig holds the seed admin credentials
type AdminConfig struct {
	Email    string
	Password string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, environment variables take over
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedOrigins", []string{"*"})
	viper.SetDefault("Server.StaticDir", "./web")
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "lottologic")
	viper.SetDefault("JWT.Secret", "change-me")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Lotto.BaseURL", "https://www.dhlottery.co.kr/common.do")
	viper.SetDefault("Lotto.MockAPI", false)
	viper.SetDefault("Lotto.HistorySize", 200)
	viper.SetDefault("Lotto.SeedRound", 1100)
	viper.SetDefault("Lotto.MaxNewRounds", 200)
	viper.SetDefault("Generator.Attempts", 50)
	viper.SetDefault("Generator.TargetScore", 85.0)
	viper.SetDefault("Generator.SetsPerRequest", 5)
	viper.SetDefault("Generator.MaxSetsPerRequest", 20)
	viper.SetDefault("Scheduler.Enabled", true)
	// Draws are published Saturday evening KST
	viper.SetDefault("Scheduler.RefreshCron", "5 21 * * 6")
	viper.SetDefault("Admin.Email", "admin@lottologic.local")
	viper.SetDefault("Admin.Password", "")
	viper.SetDefault("LogLevel", "info")
}
