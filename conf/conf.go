/**
 * @file conf.go
 * @brief Configuration
 *
 * Provides Config and New, which load server configuration from an
 * optional JSON file layered with HANGMAN_-prefixed environment variables
 * and built-in defaults.
 */

package conf

import (
	// Third-party
	"github.com/spf13/viper"
)

/**
 * @class LoggerConf
 * @brief Configuration for the logger package
 */
type LoggerConf struct {
	Format string
	File   string
}

/**
 * @class Config
 * @brief Top-level server configuration
 */
type Config struct {
	Host         string
	Port         int
	MaxName      int
	MaxBuf       int
	StartGuesses int
	WelcomeMsg   string
	Logger       LoggerConf
}

const (
	defaultHost         = "0.0.0.0"
	defaultPort         = 54623
	defaultMaxName      = 32
	defaultMaxBuf       = 256
	defaultStartGuesses = 7
	defaultWelcomeMsg   = "Welcome to Hangman!\r\n\r\nWhat is your name?\r\n"
	defaultLoggerFormat = "%{time:15:04:05.000} %{level:.4s} %{message}"
)

/**
 * @brief Build a viper instance with defaults and HANGMAN_ env overrides
 */
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("HANGMAN")
	v.AutomaticEnv()

	v.SetDefault("host", defaultHost)
	v.SetDefault("port", defaultPort)
	v.SetDefault("maxname", defaultMaxName)
	v.SetDefault("maxbuf", defaultMaxBuf)
	v.SetDefault("startguesses", defaultStartGuesses)
	v.SetDefault("welcomemsg", defaultWelcomeMsg)
	v.SetDefault("logger.format", defaultLoggerFormat)
	v.SetDefault("logger.file", "")

	return v
}

/**
 * @brief Load configuration, optionally from a JSON file
 * @param[in] file Path to a JSON config file; ignored when empty
 * @return config Filled Config, defaulted and env-overridden
 *
 * A missing file at a non-empty path is an error; an empty path just uses
 * defaults and environment overrides.
 */
func New(file string) (*Config, error) {
	v := newViper()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Host:         v.GetString("host"),
		Port:         v.GetInt("port"),
		MaxName:      v.GetInt("maxname"),
		MaxBuf:       v.GetInt("maxbuf"),
		StartGuesses: v.GetInt("startguesses"),
		WelcomeMsg:   v.GetString("welcomemsg"),
		Logger: LoggerConf{
			Format: v.GetString("logger.format"),
			File:   v.GetString("logger.file"),
		},
	}

	return cfg, nil
}
