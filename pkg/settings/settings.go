// Package settings holds the editor-side settings of the server.
package settings

import (
	"context"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Section is the configuration namespace the editor stores our settings in.
const Section = "snakeLanguageServer"

const DefaultMaxNumberOfProblems = 1000

type Settings struct {
	MaxNumberOfProblems int `mapstructure:"maxNumberOfProblems" json:"maxNumberOfProblems"`
}

func Default() Settings {
	return Settings{MaxNumberOfProblems: DefaultMaxNumberOfProblems}
}

// Decode reads settings from the loosely typed value an editor sends. Missing
// keys keep their defaults.
func Decode(raw any) (Settings, error) {
	out := Default()
	if raw == nil {
		return out, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return Default(), errors.Errorf("creating settings decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return Default(), errors.Errorf("decoding settings: %w", err)
	}
	return out, nil
}

// Fetcher asks the editor for the settings section scoped to uri.
type Fetcher func(ctx context.Context, uri string) (any, error)

// Store keeps the global settings and a per-document cache of fetched ones.
type Store struct {
	mu       sync.Mutex
	global   Settings
	document map[string]Settings
}

func NewStore() *Store {
	return &Store{global: Default(), document: make(map[string]Settings)}
}

func (s *Store) Global() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.global
}

// SetGlobalFrom replaces the global settings with the Section entry of raw,
// as delivered by a configuration change notification.
func (s *Store) SetGlobalFrom(raw any) error {
	var section any
	if m, ok := raw.(map[string]any); ok {
		section = m[Section]
	}
	next, err := Decode(section)

	s.mu.Lock()
	s.global = next
	s.mu.Unlock()
	return err
}

// ForDocument returns the settings for uri. Without a fetcher the global
// settings apply; otherwise the result of the first successful fetch is kept
// until Reset or Forget.
func (s *Store) ForDocument(ctx context.Context, uri string, fetch Fetcher) Settings {
	if fetch == nil {
		return s.Global()
	}

	s.mu.Lock()
	cached, ok := s.document[uri]
	s.mu.Unlock()
	if ok {
		return cached
	}

	logger := zerolog.Ctx(ctx)

	raw, err := fetch(ctx, uri)
	if err != nil {
		logger.Warn().Err(err).Str("uri", uri).Msg("fetching document settings, using defaults")
		return Default()
	}
	got, err := Decode(raw)
	if err != nil {
		logger.Warn().Err(err).Str("uri", uri).Msg("invalid document settings, using defaults")
		return got
	}

	s.mu.Lock()
	s.document[uri] = got
	s.mu.Unlock()
	return got
}

// Reset drops every cached per-document entry.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = make(map[string]Settings)
}

func (s *Store) Forget(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.document, uri)
}
