// Package snapshot persists immutable captures of simulation state as
// JSON files in a designated directory, one file per save event.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/expansim/internal/cosmos"
)

// ErrSnapshotWrite indicates an I/O failure during save. Non-fatal to
// the simulation loop; the caller surfaces it and carries on.
var ErrSnapshotWrite = errors.New("snapshot: write failed")

// Snapshot is the persisted capture format. Never mutated after write.
type Snapshot struct {
	Timestamp   time.Time         `json:"timestamp"`
	StepCount   int               `json:"step_count"`
	ElapsedTime float64           `json:"elapsed_time"`
	ScaleFactor float64           `json:"scale_factor"`
	Particles   []cosmos.Particle `json:"particles"`
}

type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Dir() string { return w.dir }

// Init creates the snapshots directory if needed.
func (w *Writer) Init() error {
	return os.MkdirAll(w.dir, 0755)
}

// Save persists the given state view and returns the file path.
// Filenames carry the step count and wall-clock milliseconds; an O_EXCL
// open with a numeric suffix retry guarantees no save in a run silently
// overwrites another.
func (w *Writer) Save(view cosmos.State) (string, error) {
	now := time.Now()
	base := fmt.Sprintf("snapshot_%06d_%d", view.Steps, now.UnixMilli())

	var f *os.File
	var path string
	for attempt := 0; ; attempt++ {
		name := base + ".json"
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d.json", base, attempt)
		}
		path = filepath.Join(w.dir, name)

		var err error
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			break
		}
		if os.IsExist(err) {
			continue
		}
		return "", fmt.Errorf("%w: %v", ErrSnapshotWrite, err)
	}
	defer f.Close()

	snap := Snapshot{
		Timestamp:   now,
		StepCount:   view.Steps,
		ElapsedTime: view.Elapsed,
		ScaleFactor: view.ScaleFactor,
		Particles:   view.Particles,
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotWrite, err)
	}
	return path, nil
}

// Load reads a snapshot file back. Round-trips reproduce particle
// positions and velocities exactly (encoding/json preserves float64).
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// List returns the snapshot files in the writer's directory, oldest
// first by name. An absent directory lists as empty.
func (w *Writer) List() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(w.dir, entry.Name()))
	}
	return paths, nil
}
