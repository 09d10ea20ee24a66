package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. It is loaded once in main and passed
// by value; nothing mutates it afterwards.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// MongoDB
	MongoURI string `mapstructure:"MONGO_URI"`
	MongoDB  string `mapstructure:"MONGO_DB"`

	// Redis
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Groq API
	GroqAPIKey      string `mapstructure:"GROQ_API_KEY"`
	GroqAPIEndpoint string `mapstructure:"GROQ_API_ENDPOINT"`
	GroqModel       string `mapstructure:"GROQ_MODEL"`
}

// LoadConfig reads settings from a .env file or the environment.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("MONGO_DB", "smarttodo")
	viper.SetDefault("GROQ_API_ENDPOINT", "https://api.groq.com/openai/v1")
	viper.SetDefault("GROQ_MODEL", "llama-3.1-8b-instant")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// The config file may be absent; settings then come from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// GetRedisConnString returns the Redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
