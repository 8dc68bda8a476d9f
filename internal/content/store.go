package content

import "sync/atomic"

// Store hands out the current Content snapshot. Readers get a whole snapshot;
// Reload swaps in a new one without touching the old.
type Store struct {
	cur  atomic.Pointer[Content]
	path string
}

// NewStore returns a store loaded from path, or holding Default when path is
// empty.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore returns a store that always holds c.
func NewStaticStore(c *Content) *Store {
	s := &Store{}
	s.cur.Store(c)
	return s
}

// Path is the content file backing the store, or "" for built-in content.
func (s *Store) Path() string { return s.path }

// Current returns the snapshot to use for one render pass.
func (s *Store) Current() *Content { return s.cur.Load() }

// Reload rereads the backing file. On error the previous snapshot is kept.
func (s *Store) Reload() error {
	if s.path == "" {
		s.cur.Store(Default())
		return nil
	}
	c, err := Load(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(c)
	return nil
}
