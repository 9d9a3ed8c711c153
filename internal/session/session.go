// Package session owns the labeling state: the queue cursor, the single-level
// undo record, and the append-only action log. All methods run on the caller's
// goroutine; the GUI drives them from its event callbacks.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oukeidos/sortpix/internal/apperrors"
	"github.com/oukeidos/sortpix/internal/files"
	"github.com/oukeidos/sortpix/internal/labels"
	"github.com/oukeidos/sortpix/internal/logger"
)

type undoRecord struct {
	dst string // where the file went
	src string // where it came from
}

// Session tracks one labeling run over a fixed image queue.
type Session struct {
	root    string
	logPath string
	labels  *labels.Set
	images  []string

	idx  int // -1 until the first Next call
	undo *undoRecord
	done bool

	now func() time.Time
}

// New builds a session over the given queue. logName overrides the log
// filename; empty means LogFileName. The cursor starts before the first
// image; call Next once to show it.
func New(root string, set *labels.Set, images []string, logName string) *Session {
	if logName == "" {
		logName = LogFileName
	}
	return &Session{
		root:    root,
		logPath: filepath.Join(root, logName),
		labels:  set,
		images:  images,
		idx:     -1,
		now:     time.Now,
	}
}

// Root returns the image root directory.
func (s *Session) Root() string { return s.root }

// LogPath returns the path of the action log.
func (s *Session) LogPath() string { return s.logPath }

// Labels returns the label set the session dispatches to.
func (s *Session) Labels() *labels.Set { return s.labels }

// Len returns the fixed queue length.
func (s *Session) Len() int { return len(s.images) }

// Done reports whether the queue has been exhausted.
func (s *Session) Done() bool { return s.done }

// Count returns the number of images put behind the cursor; at completion it
// is the count reported in the summary.
func (s *Session) Count() int {
	if s.idx < 0 {
		return 0
	}
	return s.idx
}

// Current returns the filename under the cursor.
func (s *Session) Current() (string, bool) {
	if s.done || s.idx < 0 || s.idx >= len(s.images) {
		return "", false
	}
	return s.images[s.idx], true
}

// CurrentPath returns the absolute path of the image under the cursor.
func (s *Session) CurrentPath() (string, bool) {
	name, ok := s.Current()
	if !ok {
		return "", false
	}
	return filepath.Join(s.root, name), true
}

// Progress returns the 1-based position, the total, and the percentage done.
func (s *Session) Progress() (pos, total int, pct float64) {
	total = len(s.images)
	pos = s.idx + 1
	if total > 0 {
		pct = float64(pos) / float64(total) * 100
	}
	return pos, total, pct
}

// Next advances the cursor. Reaching the end of the queue flips the session
// into its terminal state and returns an exhausted error; every later call
// reports the same without mutating anything.
func (s *Session) Next() error {
	return s.advance(1)
}

func (s *Session) advance(delta int) error {
	if s.done {
		return apperrors.Exhausted()
	}
	s.idx += delta
	if s.idx >= len(s.images) {
		s.done = true
		logger.Info("Queue exhausted", "labeled", s.idx)
		return apperrors.Exhausted()
	}
	return nil
}

// Apply labels the current image: appends one log row, moves the file into the
// label directory, records the move for undo, and advances the cursor. The
// returned error is an exhausted error when this was the last image.
func (s *Session) Apply(labelIdx int) error {
	if s.done {
		return apperrors.Exhausted()
	}
	name, ok := s.Current()
	if !ok {
		return fmt.Errorf("no current image (cursor %d of %d)", s.idx, len(s.images))
	}
	if labelIdx < 0 || labelIdx >= s.labels.Len() {
		return fmt.Errorf("label index %d out of range", labelIdx)
	}
	label := s.labels.Label(labelIdx)

	entry, err := ParseName(name)
	if err != nil {
		return err
	}

	if info, err := os.Stat(label.Dir); err != nil || !info.IsDir() {
		return apperrors.New(apperrors.KindMissingLabel,
			fmt.Sprintf("label directory %q does not exist", label.Name), err)
	}

	pos, total, pct := s.Progress()
	logger.Info("Labeling image",
		"image", fmt.Sprintf("%d of %d", pos, total),
		"pct", fmt.Sprintf("%.2f%%", pct),
		"file", name,
		"label", label.Name)

	if err := appendRow(s.logPath, newRow(s.now(), entry, label.Name)); err != nil {
		return err
	}

	src := filepath.Join(s.root, name)
	dst := filepath.Join(label.Dir, name)
	dst, renamed, err := files.SafePath(dst)
	if err == nil && renamed {
		logger.Warn("Destination exists, using safe name", "path", dst)
	}
	if err == nil {
		err = files.MoveFile(src, dst)
	}
	if err != nil {
		// Keep the log in step with the filesystem: the row we just wrote
		// describes a move that did not happen.
		if rbErr := removeLastRow(s.logPath); rbErr != nil {
			logger.Error("Failed to roll back log row", "error", rbErr)
		}
		return fmt.Errorf("failed to move %q to label %q: %w", name, label.Name, err)
	}

	s.undo = &undoRecord{dst: dst, src: src}
	return s.advance(1)
}

// Undo reverses the most recent label action. Only one level is kept: a
// second call right after a successful undo reports nothing to undo, and an
// undo whose file has since moved again reports already undone. Neither case
// mutates any state.
func (s *Session) Undo() error {
	if s.done {
		return apperrors.Exhausted()
	}
	if s.undo == nil {
		return apperrors.NothingToUndo()
	}
	if _, err := os.Stat(s.undo.dst); err != nil {
		return apperrors.AlreadyUndone()
	}

	restored := filepath.Base(s.undo.src)
	if err := files.MoveFile(s.undo.dst, s.undo.src); err != nil {
		return fmt.Errorf("failed to move %q back: %w", s.undo.dst, err)
	}
	if err := removeLastRow(s.logPath); err != nil {
		return err
	}

	s.idx--
	s.undo = nil
	logger.Info("Undid label action", "file", restored)
	return nil
}
