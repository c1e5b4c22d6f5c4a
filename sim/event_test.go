package sim

import (
	"testing"
)

func TestEventLess_TimeDominates(t *testing.T) {
	a := &ArrivalEvent{time: 5, ParcelID: 9}
	b := &TransportEvent{time: 3, From: 0, To: 1}
	if eventLess(a, b) {
		t.Errorf("arrival at t=5 must not fire before transport at t=3")
	}
	if !eventLess(b, a) {
		t.Errorf("transport at t=3 must fire before arrival at t=5")
	}
}

func TestEventLess_ArrivalBeforeTransportAtSameInstant(t *testing.T) {
	// Load-before-ship: a parcel landing at t is eligible for a firing at t.
	arr := &ArrivalEvent{time: 100, ParcelID: 0}
	tr := &TransportEvent{time: 100, From: 0, To: 1}
	if !eventLess(arr, tr) {
		t.Errorf("arrival must be processed before transport at the same instant")
	}
	if eventLess(tr, arr) {
		t.Errorf("transport must not be processed before arrival at the same instant")
	}
}

func TestEventLess_ArrivalTieBreakByParcelID(t *testing.T) {
	a := &ArrivalEvent{time: 7, ParcelID: 1}
	b := &ArrivalEvent{time: 7, ParcelID: 2}
	if !eventLess(a, b) || eventLess(b, a) {
		t.Errorf("arrivals at the same instant must order by parcel id")
	}
}

func TestEventLess_TransportTieBreakByEdge(t *testing.T) {
	cases := []struct {
		name string
		a, b *TransportEvent
	}{
		{"from ascending", &TransportEvent{time: 7, From: 0, To: 9}, &TransportEvent{time: 7, From: 1, To: 0}},
		{"to ascending", &TransportEvent{time: 7, From: 3, To: 1}, &TransportEvent{time: 7, From: 3, To: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !eventLess(tc.a, tc.b) || eventLess(tc.b, tc.a) {
				t.Errorf("transport order wrong for %v vs %v", tc.a, tc.b)
			}
		})
	}
}
