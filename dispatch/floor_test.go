package dispatch

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"elevatorsim/elevator"
	"elevatorsim/logger"
	"elevatorsim/timer"
)

func newTestLift(id int) *elevator.Elevator {
	log := logger.GetLoggerConfigured(zerolog.Disabled)
	return elevator.New(id, 0, time.Second, time.Second, timer.NewSimClock(), log, nil)
}

type orderObserver struct {
	id    int
	calls *[]int
}

func (o *orderObserver) OnHallCall(HallCall) {
	*o.calls = append(*o.calls, o.id)
}

func TestAddElevatorIdempotent(t *testing.T) {
	log := logger.GetLoggerConfigured(zerolog.Disabled)
	f := NewFloor(0, log)
	e := newTestLift(1)

	f.AddElevator(e)
	f.AddElevator(e)

	if n := len(f.Elevators()); n != 1 {
		t.Errorf("Expected 1 registered elevator, got %d", n)
	}
}

func TestRegisterObserverIdempotent(t *testing.T) {
	log := logger.GetLoggerConfigured(zerolog.Disabled)
	f := NewFloor(0, log)
	var calls []int
	o := &orderObserver{id: 1, calls: &calls}

	f.RegisterObserver(o)
	f.RegisterObserver(o)
	f.PressExternalButton(elevator.Up)

	if len(calls) != 1 {
		t.Errorf("Expected observer notified once, got %d notifications", len(calls))
	}
}

func TestObserversNotifiedInRegistrationOrder(t *testing.T) {
	log := logger.GetLoggerConfigured(zerolog.Disabled)
	f := NewFloor(2, log)
	var calls []int
	f.RegisterObserver(&orderObserver{id: 1, calls: &calls})
	f.RegisterObserver(&orderObserver{id: 2, calls: &calls})
	f.RegisterObserver(&orderObserver{id: 3, calls: &calls})

	call := f.PressExternalButton(elevator.Down)

	if call.Floor != 2 || call.Direction != elevator.Down {
		t.Errorf("Expected call for floor 2 down, got floor %d %s", call.Floor, call.Direction)
	}
	for i, id := range calls {
		if id != i+1 {
			t.Fatalf("Expected notification order [1 2 3], got %v", calls)
		}
	}
	if len(calls) != 3 {
		t.Errorf("Expected 3 notifications, got %d", len(calls))
	}
}
