package dispatch

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"elevatorsim/elevator"
	"elevatorsim/event"
	"elevatorsim/logger"
	"elevatorsim/strategy"
	"elevatorsim/timer"
)

type sinkRecorder struct {
	events []event.Event
}

func (r *sinkRecorder) sink(e event.Event) {
	r.events = append(r.events, e)
}

type noneStrategy struct{}

func (noneStrategy) Name() string { return "None" }

func (noneStrategy) Select([]elevator.Snapshot, int, elevator.Direction) (elevator.Snapshot, bool) {
	return elevator.Snapshot{}, false
}

func TestDispatcherAssignsToSelectedElevator(t *testing.T) {
	log := logger.GetLoggerConfigured(zerolog.Disabled)
	clock := timer.NewSimClock()
	rec := &sinkRecorder{}

	near := elevator.New(1, 0, time.Second, time.Second, clock, log, rec.sink)
	far := elevator.New(2, 5, time.Second, time.Second, clock, log, rec.sink)

	d := NewDispatcher(strategy.Nearest{}, log, rec.sink)
	d.AddElevator(near)
	d.AddElevator(far)

	d.OnHallCall(HallCall{ID: uuid.New(), Floor: 2, Direction: elevator.Up})

	if floor := near.Snapshot().Floor; floor != 2 {
		t.Errorf("Expected elevator 1 at floor 2, got %d", floor)
	}
	if floor := far.Snapshot().Floor; floor != 5 {
		t.Errorf("Expected elevator 2 untouched at floor 5, got %d", floor)
	}

	var assigned *event.CallAssigned
	for i := range rec.events {
		if a, ok := rec.events[i].Value.(event.CallAssigned); ok {
			assigned = &a
		}
	}
	if assigned == nil {
		t.Fatal("Expected a CallAssigned event")
	}
	if assigned.Elevator != 1 || assigned.Floor != 2 {
		t.Errorf("Expected call assigned to elevator 1 at floor 2, got elevator %d floor %d", assigned.Elevator, assigned.Floor)
	}
}

func TestDispatcherDropsCallWithoutCandidate(t *testing.T) {
	log := logger.GetLoggerConfigured(zerolog.Disabled)
	rec := &sinkRecorder{}

	e := elevator.New(1, 0, time.Second, time.Second, timer.NewSimClock(), log, rec.sink)
	d := NewDispatcher(noneStrategy{}, log, rec.sink)
	d.AddElevator(e)

	d.OnHallCall(HallCall{ID: uuid.New(), Floor: 3, Direction: elevator.Up})

	if floor := e.Snapshot().Floor; floor != 0 {
		t.Errorf("Expected elevator untouched at floor 0, got %d", floor)
	}
	if len(rec.events) != 1 {
		t.Fatalf("Expected a single CallDropped event, got %d events", len(rec.events))
	}
	dropped, ok := rec.events[0].Value.(event.CallDropped)
	if !ok {
		t.Fatalf("Expected CallDropped, got %s", rec.events[0].EventType())
	}
	if dropped.Floor != 3 {
		t.Errorf("Expected dropped call for floor 3, got %d", dropped.Floor)
	}
}

func TestDispatcherDuplicateElevatorIgnored(t *testing.T) {
	log := logger.GetLoggerConfigured(zerolog.Disabled)
	e := newTestLift(1)
	d := NewDispatcher(strategy.Nearest{}, log, nil)

	d.AddElevator(e)
	d.AddElevator(e)

	if n := len(d.elevators); n != 1 {
		t.Errorf("Expected 1 elevator in fleet, got %d", n)
	}
}
