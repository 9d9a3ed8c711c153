// Package labels discovers label directories and assigns keyboard shortcuts.
//
// Every immediate sub-directory of the root is a label. Each label is offered
// the first character of its name as a shortcut; if an earlier (sorted) label
// already claimed it, the next free character is used. A label whose characters
// are all claimed gets no shortcut and stays mouse-only.
package labels

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Label is one destination directory a file can be sorted into.
type Label struct {
	Name string
	Dir  string
}

// Set holds the discovered labels and their shortcut table.
type Set struct {
	labels []Label
	byKey  map[string]int // shortcut -> label index
	keyPos map[int]int    // label index -> grapheme position of the shortcut
}

// Discover lists the immediate sub-directories of root and builds a Set.
// Zero sub-directories is not an error; the Set is simply empty.
func Discover(root string) (*Set, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	s := NewSet(names)
	for i := range s.labels {
		s.labels[i].Dir = filepath.Join(root, s.labels[i].Name)
	}
	return s, nil
}

// NewSet builds a Set from label names, sorted lexicographically.
// Shortcuts are assigned per grapheme cluster so multi-byte names behave.
func NewSet(names []string) *Set {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	s := &Set{
		byKey:  make(map[string]int),
		keyPos: make(map[int]int),
	}
	for i, name := range sorted {
		s.labels = append(s.labels, Label{Name: name})
		g := uniseg.NewGraphemes(name)
		pos := 0
		for g.Next() {
			key := g.Str()
			if _, taken := s.byKey[key]; !taken {
				s.byKey[key] = i
				s.keyPos[i] = pos
				break
			}
			pos++
		}
	}
	return s
}

func (s *Set) Len() int { return len(s.labels) }

// Labels returns the labels in sorted order.
func (s *Set) Labels() []Label { return s.labels }

// Label returns the label at index i.
func (s *Set) Label(i int) Label { return s.labels[i] }

// ByKey resolves a pressed key to a label index.
func (s *Set) ByKey(key string) (int, bool) {
	i, ok := s.byKey[key]
	return i, ok
}

// Shortcut returns the shortcut assigned to label i, if any.
func (s *Set) Shortcut(i int) (string, bool) {
	pos, ok := s.keyPos[i]
	if !ok {
		return "", false
	}
	g := uniseg.NewGraphemes(s.labels[i].Name)
	for p := 0; g.Next(); p++ {
		if p == pos {
			return g.Str(), true
		}
	}
	return "", false
}

// Display returns the label name with its shortcut bracketed, e.g. "c[a]r".
// Labels without a shortcut are returned unchanged.
func (s *Set) Display(i int) string {
	pos, ok := s.keyPos[i]
	if !ok {
		return s.labels[i].Name
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s.labels[i].Name)
	for p := 0; g.Next(); p++ {
		if p == pos {
			b.WriteString("[")
			b.WriteString(g.Str())
			b.WriteString("]")
			continue
		}
		b.WriteString(g.Str())
	}
	return b.String()
}

// Shortcuts returns the assigned shortcuts in label order, for logging.
func (s *Set) Shortcuts() []string {
	out := make([]string, len(s.labels))
	for i := range s.labels {
		if key, ok := s.Shortcut(i); ok {
			out[i] = key
		}
	}
	return out
}
