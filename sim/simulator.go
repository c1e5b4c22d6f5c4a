// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/parcel-sim/parcel-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, network state,
// and the event loop. All state is mutated by exactly one handler at a
// time; the emitted trace is fully determined by the input.
type Simulator struct {
	Clock int64
	// EventQueue has all the simulator events, arrivals and transport firings
	EventQueue EventQueue
	Warehouses []*Warehouse
	// Parcels is the slab owning every parcel, indexed by id. Entries are
	// nil once a parcel is delivered or dropped; sections and events refer
	// to parcels by id only.
	Parcels []*Parcel
	Config  *Config
	Metrics *Metrics

	sink trace.Sink

	// Termination witnesses: the loop exits when delivered reaches posted.
	// posted is fixed at init except for malformed-route drops.
	posted    int
	delivered int
}

// NewSimulator builds the network from a parsed Config and seeds the event
// queue: one arrival per routable posting, plus one transport firing per
// directed edge at (first posting time + transport interval). Unroutable
// postings are dropped here and never enter the posted count.
func NewSimulator(cfg *Config, sink trace.Sink) *Simulator {
	s := &Simulator{
		EventQueue: make(EventQueue, 0),
		Warehouses: make([]*Warehouse, cfg.NumWarehouses),
		Parcels:    make([]*Parcel, len(cfg.Postings)),
		Config:     cfg,
		Metrics:    NewMetrics(),
		sink:       sink,
	}
	for i := range s.Warehouses {
		s.Warehouses[i] = NewWarehouse(i, cfg.NumWarehouses)
	}

	router := NewRouter(cfg.Adjacency)
	firstPosting := int64(-1)
	for i, post := range cfg.Postings {
		route := router.Route(post.Origin, post.Dest)
		if route == nil {
			logrus.Infof("posting %d has no path %d -> %d, dropped", i, post.Origin, post.Dest)
			s.Metrics.Dropped++
			continue
		}
		p := &Parcel{
			ID:          i,
			Origin:      post.Origin,
			Dest:        post.Dest,
			PostingTime: post.PostingTime,
			Route:       route,
			RouteCursor: 0,
			LastTouched: post.PostingTime,
		}
		s.Parcels[i] = p
		s.posted++
		if firstPosting < 0 || post.PostingTime < firstPosting {
			firstPosting = post.PostingTime
		}
		s.Schedule(&ArrivalEvent{time: post.PostingTime, ParcelID: i, Warehouse: post.Origin})
	}
	s.Metrics.Posted = s.posted

	if s.posted > 0 {
		t0 := firstPosting + cfg.TransportInterval
		for u := 0; u < cfg.NumWarehouses; u++ {
			for v := 0; v < cfg.NumWarehouses; v++ {
				if cfg.Adjacency[u][v] == 1 {
					s.Schedule(&TransportEvent{time: t0, From: u, To: v})
				}
			}
		}
	}
	return s
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	heap.Push(&sim.EventQueue, ev)
}

// Run drives the event loop until every admitted parcel is delivered.
// Returns an error on structural corruption or if the queue drains before
// the delivered count reaches the posted count.
func (sim *Simulator) Run() error {
	for sim.delivered < sim.posted {
		if sim.EventQueue.Len() == 0 {
			return fmt.Errorf("event queue exhausted with %d of %d parcels delivered", sim.delivered, sim.posted)
		}
		ev := heap.Pop(&sim.EventQueue).(Event)
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[tick %07d] Executing %T", sim.Clock, ev)
		switch e := ev.(type) {
		case *ArrivalEvent:
			if err := sim.handleArrival(e); err != nil {
				return err
			}
		case *TransportEvent:
			sim.handleTransport(e)
		}
	}
	sim.Metrics.SimEndedTime = sim.Clock
	logrus.Debugf("[tick %07d] Simulation ended", sim.Clock)
	return sim.checkDrained()
}

// checkDrained verifies no parcel is still piled in any section after the
// loop exits. A resident parcel here means the termination accounting broke.
func (sim *Simulator) checkDrained() error {
	for _, w := range sim.Warehouses {
		if ids := w.Resident(); len(ids) > 0 {
			return fmt.Errorf("warehouse %d still holds parcels %v after termination", w.ID, ids)
		}
	}
	return nil
}

// handleArrival processes a parcel reaching a warehouse: deliver it, store
// it in the next-hop section, or drop it if its route is exhausted. Arrivals
// never schedule follow-on events; a stored parcel waits for the edge firing.
func (sim *Simulator) handleArrival(e *ArrivalEvent) error {
	p := sim.Parcels[e.ParcelID]
	if p == nil || p.RouteCursor >= len(p.Route) || p.Route[p.RouteCursor] != e.Warehouse {
		return fmt.Errorf("arrival at t=%d: parcel %d is not routed through warehouse %d (%v)",
			e.time, e.ParcelID, e.Warehouse, p)
	}
	p.LastTouched = e.time

	if e.Warehouse == p.Dest {
		sim.sink.Emit(trace.Record{Time: e.time, Parcel: p.ID, Kind: trace.KindDelivered, Warehouse: e.Warehouse})
		sim.delivered++
		sim.Metrics.RecordDelivery(e.time - p.PostingTime)
		sim.Parcels[p.ID] = nil
		return nil
	}

	nextHop, ok := p.NextHop()
	if !ok {
		// Route exhausted short of the destination: the parcel can never be
		// delivered, so it leaves the termination target as well.
		logrus.Errorf("parcel %d route exhausted at warehouse %d, dropped", p.ID, e.Warehouse)
		sim.posted--
		sim.Metrics.Posted--
		sim.Metrics.Dropped++
		sim.Parcels[p.ID] = nil
		return nil
	}

	sim.Warehouses[e.Warehouse].Section(nextHop).Push(p.ID)
	p.RouteCursor++
	sim.sink.Emit(trace.Record{Time: e.time, Parcel: p.ID, Kind: trace.KindStored, Warehouse: e.Warehouse, Section: nextHop})
	return nil
}

// handleTransport processes one firing of the edge (e.From -> e.To): pick
// the oldest parcels in the section as targets, dig them out of the pile,
// ship them, re-pile the blockers, and reschedule the next firing.
func (sim *Simulator) handleTransport(e *TransportEvent) {
	section := sim.Warehouses[e.From].Section(e.To)

	n := section.Len()
	k := sim.Config.TransportCapacity
	if n < k {
		k = n
	}

	dug, shipped, restored := 0, 0, 0
	if k > 0 {
		// Selection: the k smallest (LastTouched, id) tuples are the targets.
		candidates := make([]int, n)
		copy(candidates, section.Items())
		sort.Slice(candidates, func(i, j int) bool {
			a, b := sim.Parcels[candidates[i]], sim.Parcels[candidates[j]]
			if a.LastTouched != b.LastTouched {
				return a.LastTouched < b.LastTouched
			}
			return a.ID < b.ID
		})
		targets := make(map[int]bool, k)
		for _, id := range candidates[:k] {
			targets[id] = true
		}

		// Dig: pop until every target has been surfaced. Blockers on top of
		// the deepest target come out too and pay the same removal cost.
		var surfaced []int
		for found := 0; found < k; {
			id, ok := section.Pop()
			if !ok {
				break
			}
			surfaced = append(surfaced, id)
			if targets[id] {
				found++
			}
		}

		// Walk the surfaced parcels in dig order. Each parcel advances the
		// accumulator once, then logs all of its lines at that instant.
		tLog := e.time
		var restage []int
		for _, id := range surfaced {
			tLog += sim.Config.RemovalCost
			p := sim.Parcels[id]
			sim.sink.Emit(trace.Record{Time: tLog, Parcel: id, Kind: trace.KindRemoved, Warehouse: e.From, Section: e.To})
			p.LastTouched = tLog
			if targets[id] {
				sim.sink.Emit(trace.Record{Time: tLog, Parcel: id, Kind: trace.KindInTransit, From: e.From, To: e.To})
				sim.Schedule(&ArrivalEvent{time: tLog + sim.Config.TransitLatency, ParcelID: id, Warehouse: e.To})
				sim.Metrics.HopsTraversed++
				shipped++
			} else {
				sim.sink.Emit(trace.Record{Time: tLog, Parcel: id, Kind: trace.KindRestored, Warehouse: e.From, Section: e.To})
				restage = append(restage, id)
			}
		}

		// Re-pile blockers in reverse surfacing order so the pile keeps its
		// original profile minus the targets.
		for i := len(restage) - 1; i >= 0; i-- {
			section.Push(restage[i])
		}
		dug = len(surfaced)
		restored = len(restage)
	}
	sim.Metrics.RecordFiring(dug, shipped, restored)

	// Periodic reschedule, suppressed once the run is complete so the queue
	// stays bounded after the last delivery.
	if sim.delivered < sim.posted {
		sim.Schedule(&TransportEvent{time: e.time + sim.Config.TransportInterval, From: e.From, To: e.To})
	}
}
