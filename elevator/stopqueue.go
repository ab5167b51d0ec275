package elevator

import "sort"

// StopQueue holds pending floor stops for one direction of travel, ordered
// nearest-first: ascending for the up queue, descending for the down queue.
// Duplicate floors are kept; each outstanding request is its own stop.
type StopQueue struct {
	ascending bool
	floors    []int
}

func NewUpQueue() *StopQueue   { return &StopQueue{ascending: true} }
func NewDownQueue() *StopQueue { return &StopQueue{ascending: false} }

// Push inserts floor at its ordered position. Existing entries for the same
// floor keep their place; the new entry goes after them.
func (q *StopQueue) Push(floor int) {
	i := sort.Search(len(q.floors), func(i int) bool {
		if q.ascending {
			return q.floors[i] > floor
		}
		return q.floors[i] < floor
	})
	q.floors = append(q.floors, 0)
	copy(q.floors[i+1:], q.floors[i:])
	q.floors[i] = floor
}

// Pop removes and returns the nearest pending stop.
func (q *StopQueue) Pop() (int, bool) {
	if len(q.floors) == 0 {
		return 0, false
	}
	floor := q.floors[0]
	q.floors = q.floors[1:]
	return floor, true
}

func (q *StopQueue) Peek() (int, bool) {
	if len(q.floors) == 0 {
		return 0, false
	}
	return q.floors[0], true
}

func (q *StopQueue) Len() int { return len(q.floors) }

// Floors returns a copy of the pending stops in visit order.
func (q *StopQueue) Floors() []int {
	out := make([]int, len(q.floors))
	copy(out, q.floors)
	return out
}
