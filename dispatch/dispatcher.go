package dispatch

import (
	"github.com/rs/zerolog"

	"elevatorsim/elevator"
	"elevatorsim/event"
	"elevatorsim/strategy"
)

// Dispatcher owns the selection strategy and the elevator fleet. It
// observes hall calls, scores a snapshot of every elevator and hands the
// request to the winner. A call nobody can take is dropped, not retried.
type Dispatcher struct {
	strategy  strategy.Strategy
	elevators []*elevator.Elevator
	byID      map[int]*elevator.Elevator
	log       zerolog.Logger
	sink      event.Sink
}

func NewDispatcher(s strategy.Strategy, log *zerolog.Logger, sink event.Sink) *Dispatcher {
	return &Dispatcher{
		strategy: s,
		byID:     make(map[int]*elevator.Elevator),
		log:      log.With().Str("strategy", s.Name()).Logger(),
		sink:     sink,
	}
}

// AddElevator registers an elevator with the fleet. Registration order is
// also the strategy's tie-break order. Duplicate ids are ignored.
func (d *Dispatcher) AddElevator(e *elevator.Elevator) {
	if _, ok := d.byID[e.ID()]; ok {
		return
	}
	d.byID[e.ID()] = e
	d.elevators = append(d.elevators, e)
}

// OnHallCall implements Observer.
func (d *Dispatcher) OnHallCall(call HallCall) {
	snapshots := make([]elevator.Snapshot, 0, len(d.elevators))
	for _, e := range d.elevators {
		snapshots = append(snapshots, e.Snapshot())
	}

	pick, ok := d.strategy.Select(snapshots, call.Floor, call.Direction)
	if !ok {
		d.log.Warn().Stringer("call", call.ID).Int("floor", call.Floor).Msg("no elevators available")
		d.emit(event.CallDropped{Call: call.ID, Floor: call.Floor})
		return
	}

	d.log.Info().Stringer("call", call.ID).Int("floor", call.Floor).Int("elevator", pick.ID).Msg("call assigned")
	d.emit(event.CallAssigned{Call: call.ID, Elevator: pick.ID, Floor: call.Floor})
	d.byID[pick.ID].AddExternalRequest(call.Floor)
}

func (d *Dispatcher) emit(payload any) {
	if d.sink != nil {
		d.sink(event.Event{Value: payload})
	}
}
