package selection

import (
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"ytfetchbot/internal/catalog"
)

// Entry binds one picker button to the variant and source URL it was minted
// for.
type Entry struct {
	SourceURL string
	Variant   catalog.Variant
}

// Store holds short-lived selection entries keyed by opaque tokens. Tokens
// are random, so entries from different prompts can never collide, and the
// underlying cache bounds growth with a TTL and a maximum entry count.
// Safe for concurrent use.
type Store struct {
	entries *lru.LRU[string, Entry]
}

func NewStore(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		entries: lru.NewLRU[string, Entry](maxEntries, nil, ttl),
	}
}

// Put registers a selection and returns its freshly minted token.
func (s *Store) Put(sourceURL string, variant catalog.Variant) string {
	token := uuid.NewString()
	s.entries.Add(token, Entry{SourceURL: sourceURL, Variant: variant})
	return token
}

// Get resolves a token. The second return is false for unknown, expired or
// evicted tokens.
func (s *Store) Get(token string) (Entry, bool) {
	return s.entries.Get(token)
}

func (s *Store) Len() int {
	return s.entries.Len()
}
