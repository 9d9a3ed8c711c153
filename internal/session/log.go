package session

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/oukeidos/sortpix/internal/files"
)

// LogFileName is the append-only action log kept in the image root.
const LogFileName = "image_labels.csv"

// TimestampFormat is the first column of every log row.
const TimestampFormat = "2006-01-02 15:04:05"

// Row is one completed label action.
type Row struct {
	Timestamp string
	Serial    string
	Iteration string
	Base      string
	Label     string
}

func (r Row) fields() []string {
	return []string{r.Timestamp, r.Serial, r.Iteration, r.Base, r.Label}
}

// appendRow appends exactly one row to the log, creating the file on first use.
// No header row is written.
func appendRow(path string, row Row) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(row.fields()); err != nil {
		f.Close()
		return fmt.Errorf("failed to append log row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush log row: %w", err)
	}
	return f.Close()
}

// removeLastRow drops exactly the final line of the log, atomically.
func removeLastRow(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}
	trimmed := bytes.TrimRight(data, "\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("log is empty")
	}
	idx := bytes.LastIndexByte(trimmed, '\n')
	if idx < 0 {
		// Single row left: truncate to an empty log.
		return files.AtomicWrite(path, nil, 0644)
	}
	return files.AtomicWrite(path, trimmed[:idx+1], 0644)
}

// ReadLog parses the full log file. A missing file yields no rows.
func ReadLog(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 5
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed log: %w", err)
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			Timestamp: rec[0],
			Serial:    rec[1],
			Iteration: rec[2],
			Base:      rec[3],
			Label:     rec[4],
		})
	}
	return rows, nil
}

func newRow(now time.Time, e Entry, label string) Row {
	return Row{
		Timestamp: now.Format(TimestampFormat),
		Serial:    e.Serial,
		Iteration: e.Iteration,
		Base:      e.Base,
		Label:     label,
	}
}
