// Package sim provides the core discrete-event simulation engine for the
// parcel-logistics network.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - parcel.go: Parcel identity, route, and the age stamp used for transport selection
//   - event.go: the two event variants (Arrival, Transport) and their strict total order
//   - simulator.go: the event loop and the arrival/transport handlers
//
// # Architecture
//
// The sim package owns all mutable simulation state; sub-packages are leaves:
//   - sim/trace/: structured log records and the fixed-width line emitter
//   - sim/workload/: YAML scenario specs and random input-file generation
//
// Warehouses hold one LIFO section per possible next hop. A stored parcel
// waits in its section until the periodic transport event for that edge
// fires and digs it out. Everything is single-threaded; determinism comes
// from the event comparator, never from scheduling order.
package sim
