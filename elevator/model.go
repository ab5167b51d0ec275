package elevator

// Direction of travel. None means the elevator is idle.
type Direction int

const (
	Down Direction = -1
	None Direction = 0
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case None:
		return "none"
	default:
		return "undefined"
	}
}

// Status of the drive.
type Status int

const (
	Stopped Status = iota
	Running
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "undefined"
	}
}

// Snapshot is a consistent read of one elevator's position, taken under the
// elevator's state lock. Selection strategies work only on snapshots so they
// never race with the elevator's own mutation.
type Snapshot struct {
	ID        int
	Floor     int
	Direction Direction
}
