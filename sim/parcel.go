// Defines the Parcel struct that models an individual package in the simulation.
// Tracks origin, destination, the precomputed route, and the age stamp that
// drives transport selection.

package sim

import (
	"fmt"
)

// Parcel models a single package's lifecycle in the simulation.
// Identity (ID, Origin, Dest, PostingTime) is immutable after creation;
// RouteCursor and LastTouched advance as the parcel moves through the network.
type Parcel struct {
	ID          int   // 0-based index in posting file order
	Origin      int   // warehouse where the parcel enters the network
	Dest        int   // final destination warehouse
	PostingTime int64 // time the parcel was posted

	// Route is the precomputed warehouse sequence from Origin to Dest,
	// with Route[0] == Origin and Route[len-1] == Dest.
	Route []int

	// RouteCursor indexes the parcel's current position along Route.
	// It advances each time the parcel is stored in a next-hop section.
	RouteCursor int

	// LastTouched is the time the parcel last entered its current section.
	// Transport firings pick the k parcels with the smallest
	// (LastTouched, ID) tuples, so this stamp is the service-order key.
	LastTouched int64
}

// NextHop returns the warehouse the parcel must be forwarded to next,
// or false if the route has been exhausted.
func (p *Parcel) NextHop() (int, bool) {
	if p.RouteCursor+1 >= len(p.Route) {
		return 0, false
	}
	return p.Route[p.RouteCursor+1], true
}

// This method returns a human-readable string representation of a Parcel.
func (p Parcel) String() string {
	return fmt.Sprintf("Parcel: (ID: %d, Origin: %d, Dest: %d, Cursor: %d, LastTouched: %d)",
		p.ID, p.Origin, p.Dest, p.RouteCursor, p.LastTouched)
}
