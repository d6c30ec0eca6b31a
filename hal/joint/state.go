package joint

import (
	"errors"
	"fmt"

	"github.com/joshuapare/halkit/hal"
)

// ErrNoName indicates a handle constructed without a joint name.
var ErrNoName = errors.New("joint: handle needs a non-empty name")

// StateHandle reads the current position, velocity and effort of one joint.
// The handle stores pointers into caller-owned storage, so every read sees
// the latest values the driver wrote. Handles are cheap values; copy freely.
type StateHandle struct {
	name string
	pos  *float64
	vel  *float64
	eff  *float64
}

// NewStateHandle builds a read-only joint handle. All three data pointers
// are required.
func NewStateHandle(name string, pos, vel, eff *float64) (StateHandle, error) {
	if name == "" {
		return StateHandle{}, ErrNoName
	}
	if pos == nil {
		return StateHandle{}, fmt.Errorf("joint: cannot create handle %q: position pointer is nil", name)
	}
	if vel == nil {
		return StateHandle{}, fmt.Errorf("joint: cannot create handle %q: velocity pointer is nil", name)
	}
	if eff == nil {
		return StateHandle{}, fmt.Errorf("joint: cannot create handle %q: effort pointer is nil", name)
	}
	return StateHandle{name: name, pos: pos, vel: vel, eff: eff}, nil
}

// Name returns the joint name.
func (h StateHandle) Name() string { return h.name }

// Position returns the current joint position. A zero-value handle reads 0.
func (h StateHandle) Position() float64 {
	if h.pos == nil {
		return 0
	}
	return *h.pos
}

// Velocity returns the current joint velocity.
func (h StateHandle) Velocity() float64 {
	if h.vel == nil {
		return 0
	}
	return *h.vel
}

// Effort returns the current joint effort.
func (h StateHandle) Effort() float64 {
	if h.eff == nil {
		return 0
	}
	return *h.eff
}

// StateInterface exposes read-only joint state. Lookups never claim, so any
// number of consumers can watch the same joint.
type StateInterface struct {
	*hal.Registry[StateHandle]
}

// NewStateInterface creates an empty joint state interface. Only opts.Logger
// is used; the policy is always NonClaiming.
func NewStateInterface(opts *hal.Options) *StateInterface {
	var logger *hal.Options
	if opts != nil {
		logger = &hal.Options{Logger: opts.Logger}
	}
	return &StateInterface{hal.New[StateHandle]("joint state", logger)}
}
