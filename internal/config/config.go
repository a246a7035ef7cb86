// Package config loads the engine's resource bounds and batch-driver
// tuning from a YAML document: callers always start from Default() and
// let the loaded document override only the keys it sets.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Config holds every externally-tunable knob the engine and batch driver
// read at startup. Zero value is never used directly; callers always start
// from Default() and override from YAML.
type Config struct {
	MaxPossibleWorlds int `yaml:"max_possible_worlds"`
	MaxTreeNodes      int `yaml:"max_tree_nodes"`

	// MaxCountermodelGraphNodes bounds how many worlds the SAT-fallback
	// extractor will enumerate before giving up.
	MaxCountermodelGraphNodes int `yaml:"max_countermodel_graph_nodes"`

	// BatchWorkerCount sizes the batch driver's fixed worker pool. Zero
	// means "use runtime.NumCPU()".
	BatchWorkerCount int `yaml:"batch_worker_count"`

	// RejectDisconnectedWorlds is the default countermodel policy, see
	// prover.CountermodelPolicy.
	RejectDisconnectedWorlds bool `yaml:"reject_disconnected_worlds"`
}

func Default() Config {
	return Config{
		MaxPossibleWorlds:         25,
		MaxTreeNodes:              250,
		MaxCountermodelGraphNodes: 6,
		BatchWorkerCount:          0,
		RejectDisconnectedWorlds:  true,
	}
}

// Load reads a YAML document from path, starting from Default() so any key
// the document omits keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}
