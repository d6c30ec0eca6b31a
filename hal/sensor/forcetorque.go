package sensor

import (
	"errors"
	"fmt"

	"github.com/joshuapare/halkit/hal"
)

// ErrNoName indicates a sensor handle constructed without a name.
var ErrNoName = errors.New("sensor: handle needs a non-empty name")

// ForceTorqueHandle reads a 6-axis force/torque sensor. Force and torque are
// reported in the sensor's frame.
type ForceTorqueHandle struct {
	name   string
	frame  string
	force  *[3]float64
	torque *[3]float64
}

// NewForceTorqueHandle builds a force/torque handle. Both data pointers are
// required; frame names the reference frame the readings are expressed in.
func NewForceTorqueHandle(name, frame string, force, torque *[3]float64) (ForceTorqueHandle, error) {
	if name == "" {
		return ForceTorqueHandle{}, ErrNoName
	}
	if force == nil {
		return ForceTorqueHandle{}, fmt.Errorf("sensor: cannot create handle %q: force pointer is nil", name)
	}
	if torque == nil {
		return ForceTorqueHandle{}, fmt.Errorf("sensor: cannot create handle %q: torque pointer is nil", name)
	}
	return ForceTorqueHandle{name: name, frame: frame, force: force, torque: torque}, nil
}

// Name returns the sensor name.
func (h ForceTorqueHandle) Name() string { return h.name }

// Frame returns the reference frame of the readings.
func (h ForceTorqueHandle) Frame() string { return h.frame }

// Force returns the current force reading (x, y, z).
func (h ForceTorqueHandle) Force() [3]float64 {
	if h.force == nil {
		return [3]float64{}
	}
	return *h.force
}

// Torque returns the current torque reading (x, y, z).
func (h ForceTorqueHandle) Torque() [3]float64 {
	if h.torque == nil {
		return [3]float64{}
	}
	return *h.torque
}

// ForceTorqueInterface exposes force/torque sensors. Lookups never claim.
type ForceTorqueInterface struct {
	*hal.Registry[ForceTorqueHandle]
}

// NewForceTorqueInterface creates an empty force/torque sensor interface.
// Only opts.Logger is used.
func NewForceTorqueInterface(opts *hal.Options) *ForceTorqueInterface {
	var logger *hal.Options
	if opts != nil {
		logger = &hal.Options{Logger: opts.Logger}
	}
	return &ForceTorqueInterface{hal.New[ForceTorqueHandle]("force torque sensor", logger)}
}
