// Package filesession keeps the files attached to form fields between the moment they are
// picked and the moment the form is submitted.
//
// Files are namespaced by component (for example "mmaModData") and an arbitrary id within
// it; the data module uses "<dataid>_<fieldid>".
package filesession

import (
	"sync"

	"github.com/Station-Manager/datafields"
)

// Session is an in-memory datafields.FileSession. It is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	files map[string]map[string][]datafields.File
}

var _ datafields.FileSession = (*Session)(nil)

func New() *Session {
	return &Session{files: make(map[string]map[string][]datafields.File)}
}

// Files returns a copy of the files stored for (component, id).
func (s *Session) Files(component, id string) []datafields.File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.files[component][id]
	if len(stored) == 0 {
		return nil
	}
	return append([]datafields.File(nil), stored...)
}

// SetFiles replaces the files of (component, id). An empty list clears them.
func (s *Session) SetFiles(component, id string, files []datafields.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(files) == 0 {
		s.clearLocked(component, id)
		return
	}
	s.byComponentLocked(component)[id] = append([]datafields.File(nil), files...)
}

func (s *Session) AddFile(component, id string, f datafields.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.byComponentLocked(component)
	m[id] = append(m[id], f)
}

// RemoveFile drops the file at index. It reports false when index is out of range.
func (s *Session) RemoveFile(component, id string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.files[component][id]
	if index < 0 || index >= len(stored) {
		return false
	}
	next := make([]datafields.File, 0, len(stored)-1)
	next = append(next, stored[:index]...)
	next = append(next, stored[index+1:]...)
	if len(next) == 0 {
		s.clearLocked(component, id)
		return true
	}
	s.files[component][id] = next
	return true
}

func (s *Session) Clear(component, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked(component, id)
}

func (s *Session) ClearComponent(component string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, component)
}

func (s *Session) byComponentLocked(component string) map[string][]datafields.File {
	m := s.files[component]
	if m == nil {
		m = make(map[string][]datafields.File)
		s.files[component] = m
	}
	return m
}

func (s *Session) clearLocked(component, id string) {
	m := s.files[component]
	if m == nil {
		return
	}
	delete(m, id)
	if len(m) == 0 {
		delete(s.files, component)
	}
}
