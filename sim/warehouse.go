package sim

// Warehouse owns one section per possible next hop. Sections are indexed
// by the full warehouse id range so lookup is O(1); only sections whose
// index is an outgoing adjacency of this warehouse ever hold parcels.
type Warehouse struct {
	ID       int
	sections []Section
}

// NewWarehouse creates a warehouse with numWarehouses empty sections.
func NewWarehouse(id, numWarehouses int) *Warehouse {
	return &Warehouse{
		ID:       id,
		sections: make([]Section, numWarehouses),
	}
}

// Section returns the pile feeding the edge (w.ID -> nextHop).
func (w *Warehouse) Section(nextHop int) *Section {
	return &w.sections[nextHop]
}

// Resident returns the ids of all parcels currently piled in any section.
// Used by the post-run drain check; the order is section-major, bottom-to-top.
func (w *Warehouse) Resident() []int {
	var ids []int
	for i := range w.sections {
		ids = append(ids, w.sections[i].Items()...)
	}
	return ids
}
