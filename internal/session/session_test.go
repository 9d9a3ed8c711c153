package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oukeidos/sortpix/internal/apperrors"
	"github.com/oukeidos/sortpix/internal/labels"
	"github.com/oukeidos/sortpix/internal/queue"
)

func newTestSession(t *testing.T, images []string, labelDirs []string) *Session {
	t.Helper()
	root := t.TempDir()
	for _, d := range labelDirs {
		if err := os.Mkdir(filepath.Join(root, d), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	for _, name := range images {
		if err := os.WriteFile(filepath.Join(root, name), []byte("pixels:"+name), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	set, err := labels.Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	scanned, err := queue.Scan(root, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	s := New(root, set, scanned, "")
	s.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC) }
	if err := s.Next(); err != nil {
		t.Fatalf("initial Next: %v", err)
	}
	return s
}

func labelIndex(t *testing.T, s *Session, name string) int {
	t.Helper()
	for i := range s.Labels().Labels() {
		if s.Labels().Label(i).Name == name {
			return i
		}
	}
	t.Fatalf("label %q not found", name)
	return -1
}

func TestApply_MovesFileAndLogs(t *testing.T) {
	s := newTestSession(t, []string{"001_1_a.jpg", "002_1_b.jpg"}, []string{"cat", "dog"})

	name, _ := s.Current()
	if err := s.Apply(labelIndex(t, s, "cat")); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	moved := filepath.Join(s.Root(), "cat", name)
	if _, err := os.Stat(moved); err != nil {
		t.Fatalf("file not moved into label dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Root(), name)); !os.IsNotExist(err) {
		t.Fatalf("file still at original path")
	}

	rows, err := ReadLog(s.LogPath())
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("log has %d rows, want 1", len(rows))
	}
	want := Row{
		Timestamp: "2026-03-14 15:09:26",
		Serial:    "001",
		Iteration: "1",
		Base:      "_a",
		Label:     "cat",
	}
	if rows[0] != want {
		t.Fatalf("row = %+v, want %+v", rows[0], want)
	}

	if s.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", s.Count())
	}
}

func TestApplyThenUndo_RestoresEverything(t *testing.T) {
	s := newTestSession(t, []string{"001_1_a.jpg", "002_1_b.jpg"}, []string{"cat"})

	name, _ := s.Current()
	before, err := os.ReadFile(filepath.Join(s.Root(), name))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if err := s.Apply(0); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	after, err := os.ReadFile(filepath.Join(s.Root(), name))
	if err != nil {
		t.Fatalf("file not restored: %v", err)
	}
	if string(after) != string(before) {
		t.Fatalf("content changed across undo")
	}

	rows, err := ReadLog(s.LogPath())
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("log has %d rows after undo, want 0", len(rows))
	}

	cur, ok := s.Current()
	if !ok || cur != name {
		t.Fatalf("cursor not back on undone image: %q", cur)
	}
	if s.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", s.Count())
	}
}

func TestUndo_OnlyOnce(t *testing.T) {
	s := newTestSession(t, []string{"001_1_a.jpg", "002_1_b.jpg", "003_1_c.jpg"}, []string{"cat"})

	if err := s.Apply(0); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("first Undo: %v", err)
	}

	err := s.Undo()
	if err == nil {
		t.Fatalf("second Undo should fail")
	}
	if !apperrors.IsWarning(err) {
		t.Fatalf("second Undo should be a warning, got %v", err)
	}

	// Nothing mutated by the failed undo.
	rows, _ := ReadLog(s.LogPath())
	if len(rows) != 0 {
		t.Fatalf("failed undo touched the log: %d rows", len(rows))
	}
	if s.Count() != 0 {
		t.Fatalf("failed undo moved the cursor: %d", s.Count())
	}
}

func TestUndo_NothingPending(t *testing.T) {
	s := newTestSession(t, []string{"001_1_a.jpg"}, []string{"cat"})
	err := s.Undo()
	if !apperrors.Is(err, apperrors.KindNothingToUndo) {
		t.Fatalf("Undo with no record = %v, want nothing_to_undo", err)
	}
}

func TestUndo_FileMovedAgain(t *testing.T) {
	s := newTestSession(t, []string{"001_1_a.jpg", "002_1_b.jpg", "003_1_c.jpg"}, []string{"cat"})

	if err := s.Apply(0); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	name := "001_1_a.jpg"
	if cur, _ := s.Current(); cur == name {
		t.Fatalf("queue fixture assumption broken")
	}
	// Someone removed the labeled file from under us.
	if err := os.Remove(filepath.Join(s.Root(), "cat", name)); err != nil {
		t.Fatalf("remove: %v", err)
	}

	err := s.Undo()
	if !apperrors.Is(err, apperrors.KindAlreadyUndone) {
		t.Fatalf("Undo = %v, want already_undone", err)
	}
	rows, _ := ReadLog(s.LogPath())
	if len(rows) != 1 {
		t.Fatalf("failed undo touched the log: %d rows", len(rows))
	}
}

func TestApply_NRowsAndCursor(t *testing.T) {
	images := []string{"001_1_a.jpg", "002_1_b.jpg", "003_1_c.jpg", "004_1_d.jpg"}
	s := newTestSession(t, images, []string{"cat", "dog"})

	for i := 0; i < 3; i++ {
		if err := s.Apply(i % 2); err != nil {
			t.Fatalf("Apply %d: %v", i, err)
		}
	}

	rows, err := ReadLog(s.LogPath())
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("log has %d rows, want 3", len(rows))
	}
	if s.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", s.Count())
	}
}

func TestCompletion_TerminalState(t *testing.T) {
	s := newTestSession(t, []string{"001_1_a.jpg", "002_1_b.jpg"}, []string{"cat"})

	if err := s.Apply(0); err != nil {
		t.Fatalf("Apply first: %v", err)
	}
	err := s.Apply(0)
	if !apperrors.Is(err, apperrors.KindExhausted) {
		t.Fatalf("final Apply = %v, want exhausted", err)
	}
	if !s.Done() {
		t.Fatalf("session not done after last image")
	}
	if s.Count() != 2 {
		t.Fatalf("completion count = %d, want 2", s.Count())
	}

	// Terminal: no further label or undo mutates anything.
	if err := s.Apply(0); !apperrors.Is(err, apperrors.KindExhausted) {
		t.Fatalf("Apply after done = %v", err)
	}
	if err := s.Undo(); !apperrors.Is(err, apperrors.KindExhausted) {
		t.Fatalf("Undo after done = %v", err)
	}
	rows, _ := ReadLog(s.LogPath())
	if len(rows) != 2 {
		t.Fatalf("terminal input touched the log: %d rows", len(rows))
	}
}

func TestApply_MissingLabelDir(t *testing.T) {
	s := newTestSession(t, []string{"001_1_a.jpg"}, []string{"cat"})
	if err := os.Remove(filepath.Join(s.Root(), "cat")); err != nil {
		t.Fatalf("remove label dir: %v", err)
	}

	err := s.Apply(0)
	if !apperrors.Is(err, apperrors.KindMissingLabel) {
		t.Fatalf("Apply = %v, want missing_label", err)
	}
	// Nothing moved, nothing logged.
	if _, statErr := os.Stat(filepath.Join(s.Root(), "001_1_a.jpg")); statErr != nil {
		t.Fatalf("file moved despite missing label dir: %v", statErr)
	}
	rows, _ := ReadLog(s.LogPath())
	if len(rows) != 0 {
		t.Fatalf("log written despite failed apply: %d rows", len(rows))
	}
}

func TestApply_ParseFailureLeavesStateAlone(t *testing.T) {
	s := newTestSession(t, []string{"badname.jpg"}, []string{"cat"})

	err := s.Apply(0)
	if !apperrors.Is(err, apperrors.KindParse) {
		t.Fatalf("Apply = %v, want parse error", err)
	}
	if _, ok := s.Current(); !ok {
		t.Fatalf("cursor moved after parse failure")
	}
	rows, _ := ReadLog(s.LogPath())
	if len(rows) != 0 {
		t.Fatalf("log written despite parse failure: %d rows", len(rows))
	}
}

func TestApply_CollisionInLabelDir(t *testing.T) {
	s := newTestSession(t, []string{"001_1_a.jpg", "002_1_b.jpg"}, []string{"cat"})
	name, _ := s.Current()
	if err := os.WriteFile(filepath.Join(s.Root(), "cat", name), []byte("older"), 0644); err != nil {
		t.Fatalf("seed collision: %v", err)
	}

	if err := s.Apply(0); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// The pre-existing file is preserved, the new one sits beside it.
	data, err := os.ReadFile(filepath.Join(s.Root(), "cat", name))
	if err != nil {
		t.Fatalf("pre-existing file gone: %v", err)
	}
	if string(data) != "older" {
		t.Fatalf("pre-existing file overwritten")
	}
	entries, err := os.ReadDir(filepath.Join(s.Root(), "cat"))
	if err != nil {
		t.Fatalf("read label dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("label dir has %d entries, want 2", len(entries))
	}
}

func TestEmptyQueue_CompletesImmediately(t *testing.T) {
	root := t.TempDir()
	set, err := labels.Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	s := New(root, set, nil, "")
	if err := s.Next(); !apperrors.Is(err, apperrors.KindExhausted) {
		t.Fatalf("Next on empty queue = %v, want exhausted", err)
	}
	if s.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", s.Count())
	}
}
