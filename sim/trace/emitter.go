package trace

import (
	"fmt"
	"io"
)

// Emitter renders records as the canonical fixed-width lines: time is
// zero-padded to width 7, parcel and warehouse/section ids to width 3.
// Line order is exactly emission order; the Emitter never buffers or sorts.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes the record's canonical line.
func (e *Emitter) Emit(rec Record) {
	switch rec.Kind {
	case KindStored:
		fmt.Fprintf(e.w, "%07d pacote %03d armazenado em %03d na secao %03d\n",
			rec.Time, rec.Parcel, rec.Warehouse, rec.Section)
	case KindRemoved:
		fmt.Fprintf(e.w, "%07d pacote %03d removido de %03d na secao %03d\n",
			rec.Time, rec.Parcel, rec.Warehouse, rec.Section)
	case KindRestored:
		fmt.Fprintf(e.w, "%07d pacote %03d rearmazenado em %03d na secao %03d\n",
			rec.Time, rec.Parcel, rec.Warehouse, rec.Section)
	case KindInTransit:
		fmt.Fprintf(e.w, "%07d pacote %03d em transito de %03d para %03d\n",
			rec.Time, rec.Parcel, rec.From, rec.To)
	case KindDelivered:
		fmt.Fprintf(e.w, "%07d pacote %03d entregue em %03d\n",
			rec.Time, rec.Parcel, rec.Warehouse)
	}
}

// Tee fans one record stream out to several sinks in order.
type Tee []Sink

// Emit forwards the record to every sink.
func (t Tee) Emit(rec Record) {
	for _, s := range t {
		s.Emit(rec)
	}
}
