package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytfetchbot/internal/utils"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("CHANNEL_ID", "-1001234567890")
	t.Setenv("CHANNEL_USERNAME", "@testchannel")
}

func TestNewConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, int64(-1001234567890), cfg.ChannelID)
	assert.Equal(t, "testchannel", cfg.ChannelUsername, "leading @ should be stripped")
	assert.Equal(t, "yt-dlp", cfg.YTDLPPath)
	assert.Equal(t, "ffmpeg", cfg.FfmpegPath)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 30*time.Minute, cfg.SelectionSettings.TTL)
	assert.Equal(t, 256, cfg.SelectionSettings.MaxEntries)
}

func TestNewConfigMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "Missing bot token", unset: "BOT_TOKEN"},
		{name: "Missing channel ID", unset: "CHANNEL_ID"},
		{name: "Missing channel username", unset: "CHANNEL_USERNAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")
			if tt.unset == "CHANNEL_ID" {
				t.Setenv("CHANNEL_ID", "0")
			}

			_, err := NewConfig()
			require.Error(t, err)
			assert.True(t, errors.Is(err, utils.ErrConfiguration))
		})
	}
}

func TestNewConfigInvalidSelectionSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SELECTION_MAX_ENTRIES", "0")

	_, err := NewConfig()
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConfiguration))
}

func TestJoinLink(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/testchannel", cfg.JoinLink())
}
