package transcode

import (
	"context"
	"fmt"
	"os"

	"github.com/floostack/transcoder/ffmpeg"
	"github.com/sirupsen/logrus"
)

// Transcoder produces an audio-only MP3 from a downloaded media file.
type Transcoder interface {
	ToMP3(ctx context.Context, inputPath, outputPath string) error
}

// FFmpeg implements Transcoder on top of the ffmpeg binary.
type FFmpeg struct {
	config *ffmpeg.Config
}

func NewFFmpeg(ffmpegBinPath, ffprobeBinPath string) *FFmpeg {
	return &FFmpeg{
		config: &ffmpeg.Config{
			FfmpegBinPath:  ffmpegBinPath,
			FfprobeBinPath: ffprobeBinPath,
		},
	}
}

func (f *FFmpeg) ToMP3(ctx context.Context, inputPath, outputPath string) error {
	outputFormat := "mp3"
	audioCodec := "libmp3lame"
	skipVideo := true
	overwrite := true

	progress, err := ffmpeg.
		New(f.config).
		Input(inputPath).
		Output(outputPath).
		WithContext(&ctx).
		Start(ffmpeg.Options{
			OutputFormat: &outputFormat,
			AudioCodec:   &audioCodec,
			SkipVideo:    &skipVideo,
			Overwrite:    &overwrite,
		})
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w", err)
	}

	for range progress {
	}

	// ffmpeg reports some failures only through a missing or empty output.
	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("ffmpeg produced no output: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("ffmpeg produced an empty file at %s", outputPath)
	}

	logrus.Debugf("Converted %s to %s", inputPath, outputPath)
	return nil
}
