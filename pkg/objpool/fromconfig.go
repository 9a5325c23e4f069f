package objpool

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/objpool/pkg/objpool/journal"
	"github.com/randalmurphal/objpool/pkg/objpool/observability"
	"github.com/randalmurphal/objpool/pkg/objpool/spinlock"
)

// fileConfig is the on-disk pool configuration.
//
//	lock:     "spin" | "ticket" | "mutex"   (default "spin")
//	capacity: initial entry capacity        (default 0)
//	metrics:  enable OpenTelemetry metrics  (default false)
//	journal:  "" | "memory" | sqlite path   (default "")
//	id:       pool identifier override      (default generated)
type fileConfig struct {
	Lock     string `yaml:"lock" json:"lock"`
	Capacity int    `yaml:"capacity" json:"capacity"`
	Metrics  bool   `yaml:"metrics" json:"metrics"`
	Journal  string `yaml:"journal" json:"journal"`
	ID       string `yaml:"id" json:"id"`
}

// OptionsFromFile reads a pool configuration file and translates it
// into construction options:
//
//	opts, err := objpool.OptionsFromFile("objpool.yaml")
//	if err != nil { ... }
//	pool := objpool.New(opts...)
//
// The format is detected by extension: .yaml, .yml, or .json.
//
// When the journal key names a SQLite path, the store is opened here
// and the caller owns closing it; List it from the pool's journal
// store directly for diagnostics.
func OptionsFromFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return OptionsFromYAML(data)
	case ".json":
		return OptionsFromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported pool config extension %q", ext)
	}
}

// OptionsFromYAML parses a YAML pool configuration. Unknown keys are
// rejected so a typo cannot silently fall back to a default.
func OptionsFromYAML(data []byte) ([]Option, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	return fc.options()
}

// OptionsFromJSON parses a JSON pool configuration. Unknown keys are
// rejected so a typo cannot silently fall back to a default.
func OptionsFromJSON(data []byte) ([]Option, error) {
	var fc fileConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	return fc.options()
}

func (fc fileConfig) options() ([]Option, error) {
	var opts []Option

	switch fc.Lock {
	case "", "spin":
		opts = append(opts, WithLocker(new(spinlock.SpinLock)))
	case "ticket":
		opts = append(opts, WithLocker(new(spinlock.TicketLock)))
	case "mutex":
		opts = append(opts, WithLocker(new(sync.Mutex)))
	default:
		return nil, fmt.Errorf("unknown lock kind %q", fc.Lock)
	}

	if fc.Capacity < 0 {
		return nil, fmt.Errorf("negative capacity %d", fc.Capacity)
	}
	if fc.Capacity > 0 {
		opts = append(opts, WithCapacity(fc.Capacity))
	}

	if fc.Metrics {
		opts = append(opts, WithMetrics(observability.NewMetricsRecorder()))
	}

	switch fc.Journal {
	case "":
	case "memory":
		opts = append(opts, WithJournal(journal.NewMemoryStore()))
	default:
		store, err := journal.NewSQLiteStore(fc.Journal)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		opts = append(opts, WithJournal(store))
	}

	if fc.ID != "" {
		opts = append(opts, WithID(fc.ID))
	}

	return opts, nil
}
