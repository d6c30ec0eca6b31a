package joint

import (
	"fmt"

	"github.com/joshuapare/halkit/hal"
)

// CommandHandle extends StateHandle with a writable command slot. SetCommand
// writes through to the underlying storage the driver consumes.
type CommandHandle struct {
	StateHandle
	cmd *float64
}

// NewCommandHandle wraps an existing state handle with a command pointer.
func NewCommandHandle(state StateHandle, cmd *float64) (CommandHandle, error) {
	if state.Name() == "" {
		return CommandHandle{}, ErrNoName
	}
	if cmd == nil {
		return CommandHandle{}, fmt.Errorf("joint: cannot create command handle %q: command pointer is nil", state.Name())
	}
	return CommandHandle{StateHandle: state, cmd: cmd}, nil
}

// SetCommand writes the next command for the joint. A zero-value handle
// drops the write.
func (h CommandHandle) SetCommand(v float64) {
	if h.cmd != nil {
		*h.cmd = v
	}
}

// Command returns the last command written for the joint.
func (h CommandHandle) Command() float64 {
	if h.cmd == nil {
		return 0
	}
	return *h.cmd
}

// CommandInterface hands out command handles and claims the joint on every
// lookup. The interface owns its claim bookkeeping: fetching a handle is
// what marks the joint in use, so callers cannot command a joint without
// leaving a claim behind.
type CommandInterface struct {
	*hal.Registry[CommandHandle]
	claims hal.Claims
}

// NewCommandInterface creates a claiming command interface with the given
// diagnostic label. Prefer the flavored constructors below; use this one for
// custom actuation modes. Only opts.Logger is used.
func NewCommandInterface(label string, opts *hal.Options) *CommandInterface {
	c := &CommandInterface{}
	ropts := &hal.Options{Policy: hal.Claiming, Owner: &c.claims}
	if opts != nil {
		ropts.Logger = opts.Logger
	}
	c.Registry = hal.New[CommandHandle](label, ropts)
	return c
}

// NewEffortInterface creates the command interface for effort-controlled
// joints.
func NewEffortInterface(opts *hal.Options) *CommandInterface {
	return NewCommandInterface("effort joint command", opts)
}

// NewVelocityInterface creates the command interface for velocity-controlled
// joints.
func NewVelocityInterface(opts *hal.Options) *CommandInterface {
	return NewCommandInterface("velocity joint command", opts)
}

// NewPositionInterface creates the command interface for position-controlled
// joints.
func NewPositionInterface(opts *hal.Options) *CommandInterface {
	return NewCommandInterface("position joint command", opts)
}

// Claims returns the joints claimed since the last ClearClaims, sorted.
func (c *CommandInterface) Claims() []string { return c.claims.List() }

// Claimed reports whether the named joint has been claimed.
func (c *CommandInterface) Claimed(name string) bool { return c.claims.Claimed(name) }

// ClearClaims resets the claim bookkeeping, typically between control
// cycles.
func (c *CommandInterface) ClearClaims() { c.claims.Clear() }
