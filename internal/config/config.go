package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"ytfetchbot/internal/utils"
)

type Config struct {
	BotToken        string `env:"BOT_TOKEN"`
	ChannelID       int64  `env:"CHANNEL_ID"`
	ChannelUsername string `env:"CHANNEL_USERNAME"`

	DownloadPath string `env:"DOWNLOAD_PATH" env-default:"."`
	Lang         string `env:"BOT_LANG" env-default:"en"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`

	YTDLPPath   string `env:"YTDLP_PATH" env-default:"yt-dlp"`
	FfmpegPath  string `env:"FFMPEG_PATH" env-default:"ffmpeg"`
	FfprobePath string `env:"FFPROBE_PATH" env-default:"ffprobe"`

	SelectionSettings SelectionConfig
}

// SelectionConfig bounds the in-memory selection store. Entries are evicted
// after TTL or when MaxEntries open pickers are exceeded.
type SelectionConfig struct {
	TTL        time.Duration `env:"SELECTION_TTL" env-default:"30m"`
	MaxEntries int           `env:"SELECTION_MAX_ENTRIES" env-default:"256"`
}

func NewConfig() (*Config, error) {
	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	config.ChannelUsername = strings.TrimPrefix(config.ChannelUsername, "@")

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	var missingFields []string

	if c.BotToken == "" {
		missingFields = append(missingFields, "BOT_TOKEN")
	}
	if c.ChannelID == 0 {
		missingFields = append(missingFields, "CHANNEL_ID")
	}
	if c.ChannelUsername == "" {
		missingFields = append(missingFields, "CHANNEL_USERNAME")
	}
	if len(missingFields) > 0 {
		return fmt.Errorf("%w: missing required environment variables: %s",
			utils.ErrConfiguration, strings.Join(missingFields, ", "))
	}

	if c.SelectionSettings.MaxEntries <= 0 {
		return fmt.Errorf("%w: SELECTION_MAX_ENTRIES must be positive", utils.ErrConfiguration)
	}
	if c.SelectionSettings.TTL <= 0 {
		return fmt.Errorf("%w: SELECTION_TTL must be positive", utils.ErrConfiguration)
	}

	return nil
}

// JoinLink is the public invite URL for the required channel.
func (c *Config) JoinLink() string {
	return "https://t.me/" + c.ChannelUsername
}
