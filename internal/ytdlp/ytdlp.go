package ytdlp

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Extractor is the media-metadata and download boundary. The real
// implementation shells out to yt-dlp; tests substitute a fake.
type Extractor interface {
	// Probe checks that the URL resolves to downloadable media without
	// downloading anything.
	Probe(ctx context.Context, url string) error
	// Title returns the media title for the URL.
	Title(ctx context.Context, url string) (string, error)
	// Download fetches the streams picked by the format selector into
	// outputPath, merging separate audio and video streams into mergeFormat
	// when it is non-empty.
	Download(ctx context.Context, url, selector, outputPath, mergeFormat string) error
}

// CLI drives the yt-dlp binary.
type CLI struct {
	binPath string
}

func NewCLI(binPath string) *CLI {
	return &CLI{binPath: binPath}
}

func (c *CLI) Probe(ctx context.Context, url string) error {
	cmd := exec.CommandContext(ctx, c.binPath, "--simulate", "--quiet", "--no-warnings", url)
	if output, err := cmd.CombinedOutput(); err != nil {
		logrus.WithError(err).Debugf("yt-dlp probe failed for %s: %s", url, string(output))
		return fmt.Errorf("yt-dlp probe failed: %w", err)
	}
	return nil
}

func (c *CLI) Title(ctx context.Context, url string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binPath, "--get-title", "--no-warnings", url)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("yt-dlp --get-title failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func (c *CLI) Download(ctx context.Context, url, selector, outputPath, mergeFormat string) error {
	args := []string{"-f", selector, "-o", outputPath, "--quiet", "--no-warnings"}
	if mergeFormat != "" {
		args = append(args, "--merge-output-format", mergeFormat)
	}
	args = append(args, url)

	cmd := exec.CommandContext(ctx, c.binPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("yt-dlp error: %w, output: %s", err, string(output))
	}
	return nil
}
