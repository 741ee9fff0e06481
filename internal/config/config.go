package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string  `mapstructure:"env"`            // current application environment (local, production etc)
	QuestionsPath string  `mapstructure:"questions_path"` // path to the JSON question bank
	Results       Results `mapstructure:"results"`        // results output section
	Quiz          Quiz    `mapstructure:"quiz"`           // quiz rules section
}

// Results contains the results sink and history store locations.
type Results struct {
	CSVPath       string `mapstructure:"csv_path"`        // append-only CSV results log
	HistoryDBPath string `mapstructure:"history_db_path"` // SQLite answer history database
}

// Quiz contains session rule parameters.
type Quiz struct {
	Lives           int `mapstructure:"lives"`            // strike budget per session
	Length          int `mapstructure:"length"`           // maximum questions per session
	LeaderboardSize int `mapstructure:"leaderboard_size"` // rows shown on the leaderboard screen
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("questions_path", "assets/data/questions.json")
	v.SetDefault("results.csv_path", "quiz_results.csv")
	v.SetDefault("results.history_db_path", "quiz_history.db")
	v.SetDefault("quiz.lives", 10)
	v.SetDefault("quiz.length", 10)
	v.SetDefault("quiz.leaderboard_size", 10)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("questions_path", "QUIZ_QUESTIONS_PATH")
	_ = v.BindEnv("results.csv_path", "QUIZ_RESULTS_PATH")
	_ = v.BindEnv("results.history_db_path", "QUIZ_HISTORY_DB_PATH")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Quiz.Lives <= 0 {
		return nil, errors.New("quiz.lives must be positive")
	}
	if cfg.Quiz.Length <= 0 {
		return nil, errors.New("quiz.length must be positive")
	}

	return &cfg, nil
}
