// Package building wires floors, elevators and the dispatcher into one
// simulated building and exposes the two simulation entry points: hall
// button presses and cabin requests.
package building

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"elevatorsim/config"
	"elevatorsim/dispatch"
	"elevatorsim/elevator"
	"elevatorsim/event"
	"elevatorsim/strategy"
	"elevatorsim/timer"
)

var (
	ErrFloorOutOfRange  = errors.New("building: floor out of range")
	ErrUnknownElevator  = errors.New("building: unknown elevator id")
	ErrInvalidDirection = errors.New("building: hall calls must be up or down")
)

type Building struct {
	floors     []*dispatch.Floor
	elevators  []*elevator.Elevator
	byID       map[int]*elevator.Elevator
	dispatcher *dispatch.Dispatcher
}

// New builds cfg.Floors floors numbered from 0 and cfg.Elevators elevators
// with ids from 1, all parked at floor 0. The selection strategy is resolved
// by name against a fresh registry; an unknown name fails construction.
func New(cfg config.Config, clock timer.Clock, log *zerolog.Logger, sink event.Sink) (*Building, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := strategy.NewRegistry()
	strat, err := registry.Lookup(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("building: strategy %q: %w", cfg.Strategy, err)
	}

	b := &Building{
		byID:       make(map[int]*elevator.Elevator),
		dispatcher: dispatch.NewDispatcher(strat, log, sink),
	}

	for id := 1; id <= cfg.Elevators; id++ {
		e := elevator.New(id, 0, cfg.FloorTravelTime.Std(), cfg.DoorOpenDuration.Std(), clock, log, sink)
		b.elevators = append(b.elevators, e)
		b.byID[id] = e
		b.dispatcher.AddElevator(e)
	}

	for number := 0; number < cfg.Floors; number++ {
		f := dispatch.NewFloor(number, log)
		for _, e := range b.elevators {
			f.AddElevator(e)
		}
		f.RegisterObserver(b.dispatcher)
		b.floors = append(b.floors, f)
	}

	return b, nil
}

// PressExternalButton presses the hall button for direction on a floor.
func (b *Building) PressExternalButton(floor int, direction elevator.Direction) error {
	if floor < 0 || floor >= len(b.floors) {
		return fmt.Errorf("%w: %d", ErrFloorOutOfRange, floor)
	}
	if direction != elevator.Up && direction != elevator.Down {
		return fmt.Errorf("%w: %s", ErrInvalidDirection, direction)
	}
	b.floors[floor].PressExternalButton(direction)
	return nil
}

// AddInternalRequest presses a cabin button inside elevator elevatorID.
func (b *Building) AddInternalRequest(elevatorID, floor int) error {
	e, ok := b.byID[elevatorID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownElevator, elevatorID)
	}
	if floor < 0 || floor >= len(b.floors) {
		return fmt.Errorf("%w: %d", ErrFloorOutOfRange, floor)
	}
	e.AddInternalRequest(floor)
	return nil
}

func (b *Building) NumFloors() int { return len(b.floors) }

func (b *Building) Floor(number int) (*dispatch.Floor, bool) {
	if number < 0 || number >= len(b.floors) {
		return nil, false
	}
	return b.floors[number], true
}

func (b *Building) Elevator(id int) (*elevator.Elevator, bool) {
	e, ok := b.byID[id]
	return e, ok
}

// Elevators returns the fleet in id order.
func (b *Building) Elevators() []*elevator.Elevator {
	out := make([]*elevator.Elevator, len(b.elevators))
	copy(out, b.elevators)
	return out
}
