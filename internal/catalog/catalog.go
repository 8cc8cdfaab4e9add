package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"ytfetchbot/internal/lang"
	"ytfetchbot/internal/ytdlp"
)

type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// Variant is one selectable output configuration for a source URL.
// Immutable once built.
type Variant struct {
	Kind     Kind
	Label    string
	Selector string
	Ext      string
	Height   int
}

// resolutions is the fixed descending video ladder offered for every link.
var resolutions = []int{1080, 720, 480, 360, 144}

// Catalog lists the selectable variants for a media URL.
type Catalog struct {
	extractor ytdlp.Extractor
}

func NewCatalog(extractor ytdlp.Extractor) *Catalog {
	return &Catalog{extractor: extractor}
}

// ListVariants validates the URL against the extractor without downloading
// and, if it resolves, returns the fixed variant ladder: one audio entry
// followed by the video resolutions in descending order. An unresolvable URL
// yields an empty list.
func (c *Catalog) ListVariants(ctx context.Context, url string) []Variant {
	if err := c.extractor.Probe(ctx, url); err != nil {
		logrus.WithError(err).Warnf("No formats available for %s", url)
		return nil
	}

	variants := make([]Variant, 0, len(resolutions)+1)
	variants = append(variants, Variant{
		Kind:     KindAudio,
		Label:    lang.GetMessage(lang.AudioLabelMsgID),
		Selector: "bestaudio/best",
		Ext:      "mp3",
	})
	for _, height := range resolutions {
		variants = append(variants, Variant{
			Kind:     KindVideo,
			Label:    fmt.Sprintf("%dp", height),
			Selector: fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", height, height),
			Ext:      "mp4",
			Height:   height,
		})
	}
	return variants
}
