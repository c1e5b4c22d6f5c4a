// Package workload generates simulation input files from declarative
// scenario specs. A spec fixes the topology shape, the posting volume, and
// the four transport parameters; a seed makes the output reproducible.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioSpec is the top-level scenario configuration.
// Loaded from YAML via LoadScenarioSpec(path).
type ScenarioSpec struct {
	Seed int64 `yaml:"seed"`

	// Topology
	Warehouses      int     `yaml:"warehouses"`
	EdgeProbability float64 `yaml:"edge_probability"`
	// RingBackbone adds the directed cycle 0->1->...->N-1->0 so every
	// posting is routable regardless of the random edges.
	RingBackbone bool `yaml:"ring_backbone"`

	// Postings
	Postings      int   `yaml:"postings"`
	PostingWindow int64 `yaml:"posting_window"`

	// Transport parameters, copied verbatim into the generated file.
	TransportCapacity int   `yaml:"transport_capacity"`
	TransitLatency    int64 `yaml:"transit_latency"`
	TransportInterval int64 `yaml:"transport_interval"`
	RemovalCost       int64 `yaml:"removal_cost"`
}

// LoadScenarioSpec reads and validates a YAML scenario spec.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	spec := &ScenarioSpec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec %s: %w", path, err)
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scenario spec %s: %w", path, err)
	}
	return spec, nil
}

func (s *ScenarioSpec) applyDefaults() {
	if s.Warehouses == 0 {
		s.Warehouses = 8
	}
	if s.PostingWindow == 0 {
		s.PostingWindow = 100
	}
	if s.TransportCapacity == 0 {
		s.TransportCapacity = 2
	}
	if s.TransportInterval == 0 {
		s.TransportInterval = 100
	}
}

// Validate rejects specs that could not round-trip through the simulator's
// own input validation.
func (s *ScenarioSpec) Validate() error {
	if s.Warehouses < 2 {
		return fmt.Errorf("warehouses must be >= 2, got %d", s.Warehouses)
	}
	if s.EdgeProbability < 0 || s.EdgeProbability > 1 {
		return fmt.Errorf("edge_probability must be in [0, 1], got %g", s.EdgeProbability)
	}
	if s.Postings < 0 {
		return fmt.Errorf("postings must be >= 0, got %d", s.Postings)
	}
	if s.PostingWindow < 1 {
		return fmt.Errorf("posting_window must be >= 1, got %d", s.PostingWindow)
	}
	if s.TransportCapacity < 1 {
		return fmt.Errorf("transport_capacity must be >= 1, got %d", s.TransportCapacity)
	}
	if s.TransitLatency < 0 {
		return fmt.Errorf("transit_latency must be >= 0, got %d", s.TransitLatency)
	}
	if s.TransportInterval < 1 {
		return fmt.Errorf("transport_interval must be >= 1, got %d", s.TransportInterval)
	}
	if s.RemovalCost < 0 {
		return fmt.Errorf("removal_cost must be >= 0, got %d", s.RemovalCost)
	}
	return nil
}
