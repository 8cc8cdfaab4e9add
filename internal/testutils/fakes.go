package testutils

import (
	"context"
	"os"
)

const testFileMode = 0o600

// FakeExtractor implements ytdlp.Extractor without shelling out. Download
// writes a small file at the requested path so cleanup behavior can be
// observed.
type FakeExtractor struct {
	TitleValue  string
	ProbeError  error
	TitleError  error
	DownloadErr error

	ProbeCalls    int
	DownloadCalls int
	LastSelector  string
	LastOutput    string
}

func (f *FakeExtractor) Probe(_ context.Context, _ string) error {
	f.ProbeCalls++
	return f.ProbeError
}

func (f *FakeExtractor) Title(_ context.Context, _ string) (string, error) {
	if f.TitleError != nil {
		return "", f.TitleError
	}
	return f.TitleValue, nil
}

func (f *FakeExtractor) Download(_ context.Context, _, selector, outputPath, _ string) error {
	f.DownloadCalls++
	f.LastSelector = selector
	f.LastOutput = outputPath
	if f.DownloadErr != nil {
		return f.DownloadErr
	}
	return os.WriteFile(outputPath, []byte("media"), testFileMode)
}

// FakeTranscoder implements transcode.Transcoder. On success it writes the
// output file like ffmpeg would.
type FakeTranscoder struct {
	Err   error
	Calls int

	LastInput  string
	LastOutput string
}

func (f *FakeTranscoder) ToMP3(_ context.Context, inputPath, outputPath string) error {
	f.Calls++
	f.LastInput = inputPath
	f.LastOutput = outputPath
	if f.Err != nil {
		return f.Err
	}
	return os.WriteFile(outputPath, []byte("mp3"), testFileMode)
}
