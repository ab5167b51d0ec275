package elevator

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"elevatorsim/event"
	"elevatorsim/timer"
)

// ErrDoorOpen is returned when a move is requested while the door is open.
// The move is refused and the elevator state is unchanged.
var ErrDoorOpen = errors.New("elevator: door open, refusing to move")

// Elevator is the per-cabin state machine. It owns two direction-ordered
// stop queues and processes them strictly sequentially: every public
// operation runs the full movement chain (travel, door cycle, next stop) on
// the calling goroutine before returning, with the Clock standing in for
// transit and door timing.
type Elevator struct {
	id int

	mu        sync.RWMutex // guards floor, direction, status, doorOpen
	floor     int
	direction Direction
	status    Status
	doorOpen  bool

	runMu sync.Mutex // serializes request processing across callers
	up    *StopQueue
	down  *StopQueue

	travelTime time.Duration // per floor
	doorHold   time.Duration
	clock      timer.Clock
	log        zerolog.Logger
	sink       event.Sink
}

// New creates an elevator parked at startFloor, idle, doors closed.
// A nil sink is allowed; transitions are then only logged.
func New(id, startFloor int, travelTime, doorHold time.Duration, clock timer.Clock, log *zerolog.Logger, sink event.Sink) *Elevator {
	return &Elevator{
		id:         id,
		floor:      startFloor,
		direction:  None,
		status:     Stopped,
		up:         NewUpQueue(),
		down:       NewDownQueue(),
		travelTime: travelTime,
		doorHold:   doorHold,
		clock:      clock,
		log:        log.With().Int("elevator", id).Logger(),
		sink:       sink,
	}
}

func (e *Elevator) ID() int { return e.id }

// Snapshot returns a consistent read of the elevator's position.
func (e *Elevator) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Snapshot{ID: e.id, Floor: e.floor, Direction: e.direction}
}

func (e *Elevator) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

func (e *Elevator) DoorOpen() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doorOpen
}

// PendingStops returns the queued stops for a direction, in visit order.
func (e *Elevator) PendingStops(dir Direction) []int {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	switch dir {
	case Up:
		return e.up.Floors()
	case Down:
		return e.down.Floors()
	default:
		return nil
	}
}

// AddInternalRequest enqueues a cabin request. A request for the current
// floor is a no-op; the passenger is already there.
func (e *Elevator) AddInternalRequest(floor int) {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	cur := e.currentFloor()
	switch {
	case floor > cur:
		e.up.Push(floor)
	case floor < cur:
		e.down.Push(floor)
	default:
		return
	}
	e.log.Debug().Int("floor", floor).Msg("cabin request queued")
	e.processNextRequest()
}

// AddExternalRequest enqueues an assigned hall request. A request at or
// below the current floor goes to the down queue.
func (e *Elevator) AddExternalRequest(floor int) {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	if floor > e.currentFloor() {
		e.up.Push(floor)
	} else {
		e.down.Push(floor)
	}
	e.log.Debug().Int("floor", floor).Msg("hall request queued")
	e.processNextRequest()
}

// MoveToFloor drives the cabin to floor and opens the door on arrival.
// Refused with ErrDoorOpen while the door is open.
func (e *Elevator) MoveToFloor(floor int) error {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	return e.moveToFloor(floor)
}

// OpenDoor opens the door, holds it, then closes it again. No-op if the
// door is already open.
func (e *Elevator) OpenDoor() {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	e.openDoor()
}

// CloseDoor closes the door and resumes queue processing. No-op if the door
// is already closed.
func (e *Elevator) CloseDoor() {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	e.closeDoor()
}

// processNextRequest pops the nearest stop for the current direction and
// moves there, or parks the elevator when that queue is drained. An idle
// elevator starts with the up queue. A pending stop in the opposite
// direction is left alone until the next request trigger. Caller holds
// runMu.
func (e *Elevator) processNextRequest() {
	switch e.currentDirection() {
	case Up:
		if floor, ok := e.up.Pop(); ok {
			_ = e.moveToFloor(floor)
			return
		}
	case Down:
		if floor, ok := e.down.Pop(); ok {
			_ = e.moveToFloor(floor)
			return
		}
	case None:
		if floor, ok := e.up.Pop(); ok {
			_ = e.moveToFloor(floor)
			return
		}
		if floor, ok := e.down.Pop(); ok {
			_ = e.moveToFloor(floor)
			return
		}
	}
	e.stop()
}

func (e *Elevator) moveToFloor(target int) error {
	if e.isDoorOpen() {
		e.log.Warn().Int("target", target).Msg("move refused, door is open")
		e.emit(event.MoveRefused{Elevator: e.id, Floor: target})
		return ErrDoorOpen
	}

	cur := e.currentFloor()
	if target == cur {
		e.openDoor()
		return nil
	}

	dir := Up
	if target < cur {
		dir = Down
	}
	e.mu.Lock()
	e.direction = dir
	e.status = Running
	e.mu.Unlock()

	e.log.Info().Int("from", cur).Int("to", target).Stringer("direction", dir).Msg("moving")
	e.emit(event.ElevatorMoving{Elevator: e.id, From: cur, To: target})

	distance := target - cur
	if distance < 0 {
		distance = -distance
	}
	e.clock.Sleep(time.Duration(distance) * e.travelTime)

	e.mu.Lock()
	e.floor = target
	e.mu.Unlock()

	e.log.Info().Int("floor", target).Msg("arrived")
	e.emit(event.ElevatorArrived{Elevator: e.id, Floor: target})

	e.openDoor()
	return nil
}

func (e *Elevator) openDoor() {
	if e.isDoorOpen() {
		return
	}
	e.mu.Lock()
	e.doorOpen = true
	floor := e.floor
	e.mu.Unlock()

	e.log.Info().Int("floor", floor).Msg("door open")
	e.emit(event.DoorOpened{Elevator: e.id, Floor: floor})

	e.clock.Sleep(e.doorHold)
	e.closeDoor()
}

func (e *Elevator) closeDoor() {
	if !e.isDoorOpen() {
		return
	}
	e.mu.Lock()
	e.doorOpen = false
	floor := e.floor
	e.mu.Unlock()

	e.log.Info().Int("floor", floor).Msg("door closed")
	e.emit(event.DoorClosed{Elevator: e.id, Floor: floor})

	e.processNextRequest()
}

// stop parks the elevator: direction None, status Stopped. The opposite
// queue may still hold stops; they wait for the next trigger.
func (e *Elevator) stop() {
	e.mu.Lock()
	wasRunning := e.status == Running || e.direction != None
	e.direction = None
	e.status = Stopped
	floor := e.floor
	e.mu.Unlock()

	if wasRunning {
		e.log.Info().Int("floor", floor).Msg("stopped")
		e.emit(event.ElevatorStopped{Elevator: e.id, Floor: floor})
	}
}

func (e *Elevator) currentFloor() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.floor
}

func (e *Elevator) currentDirection() Direction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.direction
}

func (e *Elevator) isDoorOpen() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doorOpen
}

func (e *Elevator) emit(payload any) {
	if e.sink != nil {
		e.sink(event.Event{Value: payload})
	}
}
