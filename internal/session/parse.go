package session

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oukeidos/sortpix/internal/apperrors"
)

// Entry is the log row material parsed out of an image filename.
//
// The naming contract is serial_iteration[base].ext: the serial runs up to the
// first underscore, the iteration up to the following underscore or dot, and
// the base is whatever remains with the extension stripped (it keeps its
// leading underscore, matching the historical log format).
type Entry struct {
	Serial    string
	Iteration string
	Base      string
}

// ParseName validates filename against the naming contract.
// Filenames that do not match yield a typed parse error rather than bogus rows.
func ParseName(filename string) (Entry, error) {
	serial, rest, found := strings.Cut(filename, "_")
	if !found || serial == "" {
		return Entry{}, apperrors.Parse(fmt.Errorf("filename %q: missing serial_iteration prefix", filename))
	}

	cut := strings.IndexAny(rest, "_.")
	iteration := rest
	tail := ""
	if cut >= 0 {
		iteration = rest[:cut]
		tail = rest[cut:]
	}
	if iteration == "" {
		return Entry{}, apperrors.Parse(fmt.Errorf("filename %q: empty iteration token", filename))
	}

	base := strings.TrimSuffix(tail, filepath.Ext(tail))
	return Entry{Serial: serial, Iteration: iteration, Base: base}, nil
}
