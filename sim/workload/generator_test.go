package workload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/parcel-sim/parcel-sim/sim"
	"github.com/parcel-sim/parcel-sim/sim/trace"
)

func testSpec() *ScenarioSpec {
	return &ScenarioSpec{
		Seed:              42,
		Warehouses:        6,
		EdgeProbability:   0.3,
		RingBackbone:      true,
		Postings:          25,
		PostingWindow:     200,
		TransportCapacity: 2,
		TransitLatency:    5,
		TransportInterval: 50,
		RemovalCost:       1,
	}
}

func TestGenerator_DeterministicForSeed(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteInput(&a, NewGenerator(testSpec()).Generate()))
	require.NoError(t, WriteInput(&b, NewGenerator(testSpec()).Generate()))
	assert.Equal(t, a.String(), b.String())

	other := testSpec()
	other.Seed = 43
	var c bytes.Buffer
	require.NoError(t, WriteInput(&c, NewGenerator(other).Generate()))
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerator_OutputParsesBack(t *testing.T) {
	cfg := NewGenerator(testSpec()).Generate()
	var buf bytes.Buffer
	require.NoError(t, WriteInput(&buf, cfg))

	parsed, err := sim.ParseConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg.TransportCapacity, parsed.TransportCapacity)
	assert.Equal(t, cfg.TransitLatency, parsed.TransitLatency)
	assert.Equal(t, cfg.TransportInterval, parsed.TransportInterval)
	assert.Equal(t, cfg.RemovalCost, parsed.RemovalCost)
	assert.Equal(t, cfg.Adjacency, parsed.Adjacency)
	assert.Equal(t, cfg.Postings, parsed.Postings)
}

func TestGenerator_ScenarioShape(t *testing.T) {
	cfg := NewGenerator(testSpec()).Generate()

	require.Len(t, cfg.Adjacency, 6)
	for u, row := range cfg.Adjacency {
		require.Len(t, row, 6)
		assert.Zero(t, row[u], "self edge at %d", u)
		// Ring backbone present.
		assert.Equal(t, 1, row[(u+1)%6])
	}

	var prev int64
	for i, post := range cfg.Postings {
		assert.NotEqual(t, post.Origin, post.Dest, "posting %d", i)
		assert.GreaterOrEqual(t, post.PostingTime, prev, "postings must be time-sorted")
		prev = post.PostingTime
	}
}

func TestGenerator_RingScenarioRunsToCompletion(t *testing.T) {
	// End-to-end: with the ring backbone every posting is routable, so the
	// simulation must deliver everything and the record stream must respect
	// the observable invariants.
	cfg := NewGenerator(testSpec()).Generate()
	log := &trace.Log{}
	s := sim.NewSimulator(cfg, log)
	require.NoError(t, s.Run())

	assert.Equal(t, 25, s.Metrics.Posted)
	assert.Equal(t, 25, s.Metrics.Delivered)
	assert.Zero(t, s.Metrics.Dropped)

	prevTime := make(map[int]int64)
	firstKind := make(map[int]trace.Kind)
	lastKind := make(map[int]trace.Kind)
	for _, rec := range log.Records {
		require.GreaterOrEqual(t, rec.Time, prevTime[rec.Parcel],
			"parcel %d timestamps must be non-decreasing", rec.Parcel)
		prevTime[rec.Parcel] = rec.Time
		if rec.Kind == trace.KindInTransit {
			assert.Equal(t, 1, cfg.Adjacency[rec.From][rec.To], "transit over a non-edge")
		}
		if _, seen := firstKind[rec.Parcel]; !seen {
			firstKind[rec.Parcel] = rec.Kind
		}
		lastKind[rec.Parcel] = rec.Kind
	}
	require.Len(t, lastKind, 25)
	for id, kind := range firstKind {
		assert.Equal(t, trace.KindStored, kind, "parcel %d must enter the trace by being stored", id)
	}
	for id, kind := range lastKind {
		assert.Equal(t, trace.KindDelivered, kind, "parcel %d must leave the trace by delivery", id)
	}
}

func TestScenarioSpec_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ScenarioSpec)
	}{
		{"one warehouse", func(s *ScenarioSpec) { s.Warehouses = 1 }},
		{"edge probability above one", func(s *ScenarioSpec) { s.EdgeProbability = 1.5 }},
		{"negative postings", func(s *ScenarioSpec) { s.Postings = -1 }},
		{"zero posting window", func(s *ScenarioSpec) { s.PostingWindow = 0 }},
		{"zero capacity", func(s *ScenarioSpec) { s.TransportCapacity = 0 }},
		{"negative latency", func(s *ScenarioSpec) { s.TransitLatency = -1 }},
		{"zero interval", func(s *ScenarioSpec) { s.TransportInterval = 0 }},
		{"negative removal cost", func(s *ScenarioSpec) { s.RemovalCost = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := testSpec()
			tc.mutate(spec)
			assert.Error(t, spec.Validate())
		})
	}
	assert.NoError(t, testSpec().Validate())
}
