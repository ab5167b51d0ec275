package dispatch

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"elevatorsim/elevator"
)

// HallCall describes one press of a hall button. The id ties the fan-out,
// selection and assignment log lines of a single press together.
type HallCall struct {
	ID        uuid.UUID
	Floor     int
	Direction elevator.Direction
}

// Observer is notified of hall calls on a floor, in registration order.
type Observer interface {
	OnHallCall(call HallCall)
}

// Floor knows which elevators serve it and who wants to hear about its
// button presses.
type Floor struct {
	number    int
	elevators []*elevator.Elevator
	known     map[int]struct{}
	observers []Observer
	log       zerolog.Logger
}

func NewFloor(number int, log *zerolog.Logger) *Floor {
	return &Floor{
		number: number,
		known:  make(map[int]struct{}),
		log:    log.With().Int("floor", number).Logger(),
	}
}

func (f *Floor) Number() int { return f.number }

// AddElevator registers an elevator with this floor. Adding the same
// elevator id twice is a no-op.
func (f *Floor) AddElevator(e *elevator.Elevator) {
	if _, ok := f.known[e.ID()]; ok {
		return
	}
	f.known[e.ID()] = struct{}{}
	f.elevators = append(f.elevators, e)
}

// Elevators returns the registered elevators in registration order.
func (f *Floor) Elevators() []*elevator.Elevator {
	out := make([]*elevator.Elevator, len(f.elevators))
	copy(out, f.elevators)
	return out
}

// RegisterObserver appends o to the notification list. Registering the same
// observer twice is a no-op.
func (f *Floor) RegisterObserver(o Observer) {
	for _, existing := range f.observers {
		if existing == o {
			return
		}
	}
	f.observers = append(f.observers, o)
}

// PressExternalButton notifies every observer of a hall call, synchronously
// and in registration order.
func (f *Floor) PressExternalButton(direction elevator.Direction) HallCall {
	call := HallCall{ID: uuid.New(), Floor: f.number, Direction: direction}
	f.log.Info().Stringer("call", call.ID).Stringer("direction", direction).Msg("hall button pressed")
	for _, o := range f.observers {
		o.OnHallCall(call)
	}
	return call
}
