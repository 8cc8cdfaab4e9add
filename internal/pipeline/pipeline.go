package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"ytfetchbot/internal/bot"
	"ytfetchbot/internal/catalog"
	"ytfetchbot/internal/lang"
	"ytfetchbot/internal/transcode"
	"ytfetchbot/internal/utils"
	"ytfetchbot/internal/ytdlp"
)

const fallbackTitle = "Downloaded Content"

// Artifact is the locally downloaded (and possibly transcoded) media file
// produced for one fetch. It is owned by the Fetch invocation that created
// it and is removed before Fetch returns.
type Artifact struct {
	LocalPath string
	Title     string
	Kind      catalog.Kind
}

// Pipeline downloads a chosen variant, transcodes audio picks to MP3,
// delivers the result to the chat and removes the local files.
type Pipeline struct {
	extractor   ytdlp.Extractor
	transcoder  transcode.Transcoder
	bot         bot.Service
	downloadDir string
}

func NewPipeline(extractor ytdlp.Extractor, transcoder transcode.Transcoder, botService bot.Service, downloadDir string) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		transcoder:  transcoder,
		bot:         botService,
		downloadDir: downloadDir,
	}
}

// Fetch runs the whole download-convert-deliver sequence for one selection.
// The artifact file is removed on every exit path, including delivery
// failure. Stage detail stays in the returned error and the log; callers
// show the user a single generic failure message.
func (p *Pipeline) Fetch(ctx context.Context, chatID int64, sourceURL string, variant catalog.Variant) error {
	artifact, err := p.download(ctx, sourceURL, variant)
	if err != nil {
		return err
	}
	defer p.removeFile(artifact.LocalPath)

	if variant.Kind == catalog.KindAudio {
		if err := p.convertToMP3(ctx, artifact); err != nil {
			return err
		}
	}

	if err := p.deliver(chatID, artifact); err != nil {
		return err
	}

	logrus.Infof("Delivered %s to chat %d", artifact.Title, chatID)
	return nil
}

func (p *Pipeline) download(ctx context.Context, sourceURL string, variant catalog.Variant) (*Artifact, error) {
	title, err := p.extractor.Title(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve title for %s: %v", utils.ErrDownloadFailed, sourceURL, err)
	}
	if strings.TrimSpace(title) == "" {
		title = fallbackTitle
	}

	ext := "m4a"
	mergeFormat := ""
	if variant.Kind == catalog.KindVideo {
		ext = variant.Ext
		mergeFormat = variant.Ext
	}
	outputPath := filepath.Join(p.downloadDir, utils.SanitizeFileName(title)+"."+ext)

	if err := p.extractor.Download(ctx, sourceURL, variant.Selector, outputPath, mergeFormat); err != nil {
		p.removeFile(outputPath)
		p.removeFile(outputPath + ".part")
		return nil, fmt.Errorf("%w: %v", utils.ErrDownloadFailed, err)
	}

	return &Artifact{LocalPath: outputPath, Title: title, Kind: variant.Kind}, nil
}

// convertToMP3 replaces the downloaded intermediate with its MP3 sidecar.
// On conversion failure nothing is delivered and both files are removed by
// the caller's deferred cleanup.
func (p *Pipeline) convertToMP3(ctx context.Context, artifact *Artifact) error {
	mp3Path := strings.TrimSuffix(artifact.LocalPath, filepath.Ext(artifact.LocalPath)) + ".mp3"

	if err := p.transcoder.ToMP3(ctx, artifact.LocalPath, mp3Path); err != nil {
		p.removeFile(mp3Path)
		return fmt.Errorf("%w: %v", utils.ErrConversionFailed, err)
	}

	p.removeFile(artifact.LocalPath)
	artifact.LocalPath = mp3Path
	return nil
}

func (p *Pipeline) deliver(chatID int64, artifact *Artifact) error {
	var err error
	if artifact.Kind == catalog.KindAudio {
		caption := lang.GetMessage(lang.AudioCaptionMsgID, artifact.Title)
		err = p.bot.SendAudio(chatID, artifact.LocalPath, caption, artifact.Title)
	} else {
		caption := lang.GetMessage(lang.VideoCaptionMsgID, artifact.Title)
		err = p.bot.SendVideo(chatID, artifact.LocalPath, caption)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDeliveryFailed, err)
	}
	return nil
}

func (p *Pipeline) removeFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warnf("Failed to delete file %s", path)
	}
}
