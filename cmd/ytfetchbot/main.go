package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	tmsbot "ytfetchbot/internal/bot"
	"ytfetchbot/internal/catalog"
	tmsconfig "ytfetchbot/internal/config"
	"ytfetchbot/internal/handlers"
	"ytfetchbot/internal/lang"
	"ytfetchbot/internal/membership"
	"ytfetchbot/internal/pipeline"
	"ytfetchbot/internal/selection"
	"ytfetchbot/internal/transcode"
	"ytfetchbot/internal/ytdlp"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	config, err := tmsconfig.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize configuration")
	}

	initLogger(config.LogLevel)
	logrus.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
	}).Info("Starting YouTube fetch bot")

	lang.SetLanguage(config.Lang)

	botInstance, err := tmsbot.InitBot(config)
	if err != nil {
		logrus.WithError(err).Fatal("Bot initialization failed")
	}

	extractor := ytdlp.NewCLI(config.YTDLPPath)
	controller := handlers.NewController(
		botInstance,
		membership.NewGate(botInstance, config.ChannelID),
		catalog.NewCatalog(extractor),
		selection.NewStore(config.SelectionSettings.TTL, config.SelectionSettings.MaxEntries),
		pipeline.NewPipeline(
			extractor,
			transcode.NewFFmpeg(config.FfmpegPath, config.FfprobePath),
			botInstance,
			config.DownloadPath,
		),
		config.JoinLink(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	go processUpdates(ctx, &wg, botInstance, controller)

	logrus.Info("YouTube fetch bot started successfully")

	<-sigChan
	logrus.Info("Received shutdown signal, starting graceful shutdown...")

	cancel()
	wg.Wait()

	logrus.Info("YouTube fetch bot shutdown complete")
}

func initLogger(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level '%s', defaulting to 'info'", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// processUpdates dispatches each update on its own goroutine so a running
// fetch never blocks other conversations.
func processUpdates(ctx context.Context, wg *sync.WaitGroup, bot *tmsbot.Bot, controller *handlers.Controller) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case update := <-updates:
			wg.Add(1)
			go func(update tgbotapi.Update) {
				defer wg.Done()
				controller.HandleUpdate(ctx, &update)
			}(update)
		case <-ctx.Done():
			logrus.Info("Stopping update processing")
			return
		}
	}
}
