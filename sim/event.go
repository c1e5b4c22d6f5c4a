package sim

// Event is the interface shared by the two simulation event variants.
// Each event carries a Timestamp (in simulated time units); the loop in
// simulator.go dispatches on the concrete type.
type Event interface {
	Timestamp() int64
}

// ArrivalEvent represents a parcel reaching a warehouse: either its posting
// at the origin or the end of a transit leg.
type ArrivalEvent struct {
	time      int64
	ParcelID  int // slab index of the arriving parcel
	Warehouse int // warehouse the parcel arrives at
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() int64 {
	return e.time
}

// TransportEvent represents the periodic firing of a directed edge.
// It carries no parcel payload; the handler digs the edge's section.
type TransportEvent struct {
	time int64
	From int // edge origin warehouse
	To   int // edge destination warehouse
}

// Timestamp returns the scheduled time of the TransportEvent.
func (e *TransportEvent) Timestamp() int64 {
	return e.time
}

// eventRank orders event kinds at equal timestamps: arrivals before
// transports, so a parcel landing at instant t is eligible for a firing
// at the same instant (load-before-ship).
func eventRank(e Event) int {
	switch e.(type) {
	case *ArrivalEvent:
		return 0
	case *TransportEvent:
		return 1
	default:
		panic("eventRank: unknown event type")
	}
}

// eventLess is the strict total order over events. The key is lexicographic:
// time, then kind (arrival first), then parcel id for arrivals, then
// (from, to) for transports. No two constructible events compare equal,
// so heap layout never influences pop order.
func eventLess(a, b Event) bool {
	if a.Timestamp() != b.Timestamp() {
		return a.Timestamp() < b.Timestamp()
	}
	ra, rb := eventRank(a), eventRank(b)
	if ra != rb {
		return ra < rb
	}
	switch ea := a.(type) {
	case *ArrivalEvent:
		eb := b.(*ArrivalEvent)
		return ea.ParcelID < eb.ParcelID
	case *TransportEvent:
		eb := b.(*TransportEvent)
		if ea.From != eb.From {
			return ea.From < eb.From
		}
		return ea.To < eb.To
	}
	return false
}
