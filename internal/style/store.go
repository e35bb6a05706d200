package style

import "sync"

// Listener is notified after the store's configuration or theme changes.
// It receives the newly active theme snapshot.
type Listener func(Theme)

// Store owns the active style configuration for one editor instance.
// Reads return value snapshots, so a decoration build never observes a
// half-applied update.
type Store struct {
	mu        sync.RWMutex
	cfg       Config
	theme     ThemeName
	listeners []Listener
}

// NewStore creates a store with the given configuration, starting on the
// light theme.
func NewStore(cfg Config) *Store {
	return &Store{
		cfg:   cfg,
		theme: ThemeLight,
	}
}

// Current returns a snapshot of the active theme.
func (s *Store) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Theme(s.theme)
}

// ThemeName returns the active theme name.
func (s *Store) ThemeName() ThemeName {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Config returns a snapshot of the full configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetTheme switches the active theme variant and notifies listeners.
// Unknown names are ignored.
func (s *Store) SetTheme(name ThemeName) {
	if !name.Valid() {
		return
	}
	s.mu.Lock()
	if s.theme == name {
		s.mu.Unlock()
		return
	}
	s.theme = name
	current := s.cfg.Theme(s.theme)
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(current)
	}
}

// Update applies a mutation to the configuration and notifies listeners.
func (s *Store) Update(mutate func(*Config)) {
	s.mu.Lock()
	mutate(&s.cfg)
	current := s.cfg.Theme(s.theme)
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(current)
	}
}

// Subscribe registers a listener for configuration changes.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
