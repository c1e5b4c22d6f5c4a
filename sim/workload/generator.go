package workload

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	sim "github.com/parcel-sim/parcel-sim/sim"
)

// Generator produces a random sim.Config from a ScenarioSpec.
// Same spec + same seed yields an identical config, and WriteInput renders
// it byte-identically, so generated files are reproducible fixtures.
type Generator struct {
	spec *ScenarioSpec
	rng  *rand.Rand
}

// NewGenerator creates a Generator seeded from the spec.
func NewGenerator(spec *ScenarioSpec) *Generator {
	return &Generator{
		spec: spec,
		rng:  rand.New(rand.NewSource(spec.Seed)),
	}
}

// Generate draws the topology and the postings. Postings are emitted in
// ascending posting-time order; origin and destination always differ.
// Routability is NOT guaranteed unless ring_backbone is set -- the
// simulator drops unroutable postings at init by contract.
func (g *Generator) Generate() *sim.Config {
	spec := g.spec
	n := spec.Warehouses

	adjacency := make([][]int, n)
	for u := range adjacency {
		adjacency[u] = make([]int, n)
		for v := range adjacency[u] {
			if u != v && g.rng.Float64() < spec.EdgeProbability {
				adjacency[u][v] = 1
			}
		}
	}
	if spec.RingBackbone {
		for u := 0; u < n; u++ {
			adjacency[u][(u+1)%n] = 1
		}
	}

	postings := make([]sim.Posting, spec.Postings)
	for i := range postings {
		origin := g.rng.Intn(n)
		dest := g.rng.Intn(n - 1)
		if dest >= origin {
			dest++
		}
		postings[i] = sim.Posting{
			PostingTime: g.rng.Int63n(spec.PostingWindow),
			Origin:      origin,
			Dest:        dest,
		}
	}
	sort.SliceStable(postings, func(i, j int) bool {
		return postings[i].PostingTime < postings[j].PostingTime
	})

	logrus.Debugf("generated scenario: %d warehouses, %d postings, seed=%d", n, spec.Postings, spec.Seed)
	return &sim.Config{
		TransportCapacity: spec.TransportCapacity,
		TransitLatency:    spec.TransitLatency,
		TransportInterval: spec.TransportInterval,
		RemovalCost:       spec.RemovalCost,
		NumWarehouses:     n,
		Adjacency:         adjacency,
		Postings:          postings,
	}
}

// WriteInput renders a config in the simulator's input-file token format.
// The external id written for each posting is its file index.
func WriteInput(w io.Writer, cfg *sim.Config) error {
	if _, err := fmt.Fprintf(w, "%d\n%d\n%d\n%d\n%d\n",
		cfg.TransportCapacity, cfg.TransitLatency, cfg.TransportInterval,
		cfg.RemovalCost, cfg.NumWarehouses); err != nil {
		return err
	}
	for _, row := range cfg.Adjacency {
		for v, entry := range row {
			sep := " "
			if v == len(row)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%d%s", entry, sep); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(w, "%d\n", len(cfg.Postings)); err != nil {
		return err
	}
	for i, post := range cfg.Postings {
		if _, err := fmt.Fprintf(w, "%d pac %d org %d dst %d\n",
			post.PostingTime, i, post.Origin, post.Dest); err != nil {
			return err
		}
	}
	return nil
}
