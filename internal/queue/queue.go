// Package queue enumerates the image files waiting to be labeled.
package queue

import (
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"
)

// DefaultExtensions are the accepted image extensions. Matching is
// case-sensitive: "IMG.PNG" is not picked up.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg"}

// Scan lists the immediate files of root whose name ends in one of exts,
// sorted. Sub-directories are never included. The queue is fixed at startup;
// there is no re-scan mid-session.
func Scan(root string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		for _, ext := range exts {
			if strings.HasSuffix(name, ext) {
				out = append(out, name)
				break
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// Shuffle permutes names in place. Seed 0 draws a time-based seed so every
// session gets a fresh order; any other seed gives a reproducible run.
func Shuffle(names []string, seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
}
