package strategy

import "elevatorsim/elevator"

// NearestName is the registry name of the Nearest policy.
const NearestName = "NearestElevator"

// Nearest picks the closest elevator that can service the request without
// reversing: for an up call, an elevator at or below the floor heading up
// or idle; for a down call, one at or above heading down or idle. When no
// such elevator exists it falls back to the closest idle elevator. Distance
// ties go to the first elevator in the given order.
type Nearest struct{}

func (Nearest) Name() string { return NearestName }

func (Nearest) Select(elevators []elevator.Snapshot, floor int, direction elevator.Direction) (elevator.Snapshot, bool) {
	if pick, ok := nearest(elevators, floor, func(s elevator.Snapshot) bool {
		return eligible(s, floor, direction)
	}); ok {
		return pick, true
	}
	// Idle fallback: any parked elevator, wherever it stands.
	return nearest(elevators, floor, func(s elevator.Snapshot) bool {
		return s.Direction == elevator.None
	})
}

func eligible(s elevator.Snapshot, floor int, direction elevator.Direction) bool {
	switch direction {
	case elevator.Up:
		return s.Floor <= floor && (s.Direction == elevator.Up || s.Direction == elevator.None)
	case elevator.Down:
		return s.Floor >= floor && (s.Direction == elevator.Down || s.Direction == elevator.None)
	default:
		return false
	}
}

func nearest(elevators []elevator.Snapshot, floor int, keep func(elevator.Snapshot) bool) (elevator.Snapshot, bool) {
	var best elevator.Snapshot
	bestDistance := -1
	for _, s := range elevators {
		if !keep(s) {
			continue
		}
		d := s.Floor - floor
		if d < 0 {
			d = -d
		}
		if bestDistance < 0 || d < bestDistance {
			best = s
			bestDistance = d
		}
	}
	return best, bestDistance >= 0
}
