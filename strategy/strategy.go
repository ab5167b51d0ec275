package strategy

import (
	"errors"

	"elevatorsim/elevator"
)

// ErrUnknownStrategy is returned by Registry.Lookup for unregistered names.
// Callers must treat the dependent operation as unavailable; no default
// strategy is substituted.
var ErrUnknownStrategy = errors.New("strategy: unknown strategy name")

// Strategy picks the elevator that should service a hall request, given a
// consistent snapshot of every candidate. The boolean is false when no
// elevator can take the request.
type Strategy interface {
	Name() string
	Select(elevators []elevator.Snapshot, floor int, direction elevator.Direction) (elevator.Snapshot, bool)
}

// Registry maps strategy names to instances. It is a plain value owned by
// whoever constructs the simulation, not process-global state. The first
// registration of a name wins; later ones are ignored.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry returns a registry preloaded with the NearestElevator policy.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]Strategy)}
	r.Register(Nearest{})
	return r
}

func (r *Registry) Register(s Strategy) {
	if _, ok := r.strategies[s.Name()]; ok {
		return
	}
	r.strategies[s.Name()] = s
}

func (r *Registry) Lookup(name string) (Strategy, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, ErrUnknownStrategy
	}
	return s, nil
}
