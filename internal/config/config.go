package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del bot.
type Config struct {
	Port               string `env:"PORT" envDefault:"3000"`
	ChannelSecret      string `env:"CHANNEL_SECRET,required"`
	ChannelAccessToken string `env:"CHANNEL_ACCESS_TOKEN,required"`
	CompletionAPIKey   string `env:"COMPLETION_API_KEY,required"`
	CompletionBaseURL  string `env:"COMPLETION_BASE_URL" envDefault:"https://api.openai.com/v1"`
	CompletionModel    string `env:"COMPLETION_MODEL" envDefault:"gpt-4"`
	LineAPIBaseURL     string `env:"LINE_API_BASE_URL" envDefault:"https://api.line.me"`
	DailyLimit         int    `env:"DAILY_LIMIT" envDefault:"5"`
	MaxHistory         int    `env:"MAX_HISTORY" envDefault:"5"`
	OutboundTimeoutSec int    `env:"OUTBOUND_TIMEOUT_SECONDS" envDefault:"30"`
	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
