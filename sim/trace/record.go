// Package trace provides the structured log records emitted by the
// simulation handlers and the fixed-width line renderer. This package has
// no dependencies on sim/ -- it stores pure data types.
package trace

// Kind identifies which state change a record describes.
type Kind int

const (
	// KindStored: a parcel was piled onto a next-hop section on arrival.
	KindStored Kind = iota
	// KindRemoved: a parcel was dug off the top of a section during a firing.
	KindRemoved
	// KindRestored: a dug parcel that was not a transport target went back.
	KindRestored
	// KindInTransit: a target parcel left on the edge.
	KindInTransit
	// KindDelivered: a parcel reached its final destination.
	KindDelivered
)

func (k Kind) String() string {
	switch k {
	case KindStored:
		return "stored"
	case KindRemoved:
		return "removed"
	case KindRestored:
		return "restored"
	case KindInTransit:
		return "in-transit"
	case KindDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// Record captures a single parcel state change. Field use by kind:
// Stored/Removed/Restored fill Warehouse and Section; InTransit fills
// From and To; Delivered fills Warehouse only.
type Record struct {
	Time      int64
	Parcel    int
	Kind      Kind
	Warehouse int
	Section   int
	From      int
	To        int
}

// Sink consumes records as the handlers produce them.
type Sink interface {
	Emit(Record)
}

// Log is an in-memory Sink, used by tests and post-run analysis.
type Log struct {
	Records []Record
}

// Emit appends the record.
func (l *Log) Emit(rec Record) {
	l.Records = append(l.Records, rec)
}
