package event

import (
	"github.com/google/uuid"
)

// Event wraps one of the payload structs below. Go has no union types, so
// consumers switch on the concrete payload.
type Event struct {
	Value any
}

// Sink receives every observable transition of the simulation. Sinks are
// called synchronously; a nil sink is allowed everywhere and means
// "log only".
type Sink func(Event)

// ElevatorMoving is emitted when an elevator starts travelling to a floor.
type ElevatorMoving struct {
	Elevator int
	From     int
	To       int
}

// ElevatorArrived is emitted when an elevator reaches its stop.
type ElevatorArrived struct {
	Elevator int
	Floor    int
}

// DoorOpened / DoorClosed track the door cycle at a floor.
type DoorOpened struct {
	Elevator int
	Floor    int
}

type DoorClosed struct {
	Elevator int
	Floor    int
}

// ElevatorStopped is emitted when both direction queues are drained for the
// active direction and the elevator parks.
type ElevatorStopped struct {
	Elevator int
	Floor    int
}

// MoveRefused is emitted when a move is rejected because the door is open.
type MoveRefused struct {
	Elevator int
	Floor    int
}

// CallAssigned is emitted by the dispatcher when a hall call is handed to
// an elevator.
type CallAssigned struct {
	Call     uuid.UUID
	Elevator int
	Floor    int
}

// CallDropped is emitted when no elevator can service a hall call.
type CallDropped struct {
	Call  uuid.UUID
	Floor int
}

func (e *Event) EventType() string {
	switch e.Value.(type) {
	case ElevatorMoving:
		return "ElevatorMoving"
	case ElevatorArrived:
		return "ElevatorArrived"
	case DoorOpened:
		return "DoorOpened"
	case DoorClosed:
		return "DoorClosed"
	case ElevatorStopped:
		return "ElevatorStopped"
	case MoveRefused:
		return "MoveRefused"
	case CallAssigned:
		return "CallAssigned"
	case CallDropped:
		return "CallDropped"
	default:
		return "UnknownEvent"
	}
}
