// Tracks simulation-wide statistics: parcel counts, transport activity,
// and the delivery-latency distribution.

package sim

import (
	"fmt"
	"io"
	"sort"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/aclements/go-moremath/stats"
)

// Metrics aggregates statistics about the simulation for final reporting.
// The summary never goes to stdout; the run loop's observable output is
// the trace line stream alone.
type Metrics struct {
	Posted    int // parcels admitted into the simulation (routable postings)
	Delivered int // parcels that reached their final destination
	Dropped   int // parcels discarded (unroutable at init or malformed route)

	TransportFirings int // transport events processed
	EmptyFirings     int // firings that found their section empty
	ParcelsDug       int // parcels surfaced during digs, targets and blockers alike
	ParcelsShipped   int // parcels that left on an edge
	ParcelsRestored  int // blockers pushed back after a dig
	HopsTraversed    int // completed transit legs

	SimEndedTime int64 // clock value when the loop exited

	latencySketch *ddsketch.DDSketch
	latencies     stats.Sample
	digDepths     stats.Sample
}

// NewMetrics creates a Metrics ready for recording.
func NewMetrics() *Metrics {
	sketch, err := ddsketch.NewDefaultDDSketch(0.01)
	if err != nil {
		panic(err)
	}
	return &Metrics{latencySketch: sketch}
}

// RecordDelivery registers one completed parcel and its posting-to-delivery
// latency.
func (m *Metrics) RecordDelivery(latency int64) {
	m.Delivered++
	m.latencySketch.Add(float64(latency))
	m.latencies.Xs = append(m.latencies.Xs, float64(latency))
}

// RecordFiring registers one transport firing and its dig profile.
func (m *Metrics) RecordFiring(dug, shipped, restored int) {
	m.TransportFirings++
	if dug == 0 {
		m.EmptyFirings++
		return
	}
	m.ParcelsDug += dug
	m.ParcelsShipped += shipped
	m.ParcelsRestored += restored
	m.digDepths.Xs = append(m.digDepths.Xs, float64(dug))
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Parcels Posted       : %d\n", m.Posted)
	fmt.Fprintf(w, "Parcels Delivered    : %d\n", m.Delivered)
	fmt.Fprintf(w, "Parcels Dropped      : %d\n", m.Dropped)
	fmt.Fprintf(w, "Transport Firings    : %d (%d empty)\n", m.TransportFirings, m.EmptyFirings)
	fmt.Fprintf(w, "Parcels Dug          : %d (shipped %d, restored %d)\n",
		m.ParcelsDug, m.ParcelsShipped, m.ParcelsRestored)
	fmt.Fprintf(w, "Hops Traversed       : %d\n", m.HopsTraversed)
	fmt.Fprintf(w, "Final Clock          : %d\n", m.SimEndedTime)

	if m.Delivered > 0 {
		sort.Float64s(m.latencies.Xs)
		m.latencies.Sorted = true
		fmt.Fprintf(w, "Delivery Latency Mean: %.2f (stddev %.2f)\n",
			m.latencies.Mean(), m.latencies.StdDev())
		if qs, err := m.latencySketch.GetValuesAtQuantiles([]float64{0.50, 0.95, 0.99}); err == nil {
			fmt.Fprintf(w, "Delivery Latency p50 : %.2f\n", qs[0])
			fmt.Fprintf(w, "Delivery Latency p95 : %.2f\n", qs[1])
			fmt.Fprintf(w, "Delivery Latency p99 : %.2f\n", qs[2])
		}
	}
	if len(m.digDepths.Xs) > 0 {
		sort.Float64s(m.digDepths.Xs)
		m.digDepths.Sorted = true
		fmt.Fprintf(w, "Dig Depth Mean       : %.2f (p95 %.2f)\n",
			m.digDepths.Mean(), m.digDepths.Quantile(0.95))
	}
}
