package sensor

import (
	"github.com/joshuapare/halkit/hal"
)

// IMUHandle reads an inertial measurement unit. Not every IMU reports every
// field, so the data pointers are individually optional; absent fields read
// as zero and report false from the Has accessors.
type IMUHandle struct {
	name        string
	frame       string
	orientation *[4]float64 // quaternion x, y, z, w
	angularVel  *[3]float64
	linearAccel *[3]float64
}

// NewIMUHandle builds an IMU handle. Only the name is required; nil data
// pointers mark fields the sensor does not report.
func NewIMUHandle(name, frame string, orientation *[4]float64, angularVel, linearAccel *[3]float64) (IMUHandle, error) {
	if name == "" {
		return IMUHandle{}, ErrNoName
	}
	return IMUHandle{
		name:        name,
		frame:       frame,
		orientation: orientation,
		angularVel:  angularVel,
		linearAccel: linearAccel,
	}, nil
}

// Name returns the sensor name.
func (h IMUHandle) Name() string { return h.name }

// Frame returns the reference frame of the readings.
func (h IMUHandle) Frame() string { return h.frame }

// HasOrientation reports whether the IMU provides an orientation estimate.
func (h IMUHandle) HasOrientation() bool { return h.orientation != nil }

// Orientation returns the orientation quaternion (x, y, z, w).
func (h IMUHandle) Orientation() [4]float64 {
	if h.orientation == nil {
		return [4]float64{}
	}
	return *h.orientation
}

// HasAngularVelocity reports whether the IMU provides angular velocity.
func (h IMUHandle) HasAngularVelocity() bool { return h.angularVel != nil }

// AngularVelocity returns the angular velocity reading (x, y, z).
func (h IMUHandle) AngularVelocity() [3]float64 {
	if h.angularVel == nil {
		return [3]float64{}
	}
	return *h.angularVel
}

// HasLinearAcceleration reports whether the IMU provides linear
// acceleration.
func (h IMUHandle) HasLinearAcceleration() bool { return h.linearAccel != nil }

// LinearAcceleration returns the linear acceleration reading (x, y, z).
func (h IMUHandle) LinearAcceleration() [3]float64 {
	if h.linearAccel == nil {
		return [3]float64{}
	}
	return *h.linearAccel
}

// IMUInterface exposes IMU sensors. Lookups never claim.
type IMUInterface struct {
	*hal.Registry[IMUHandle]
}

// NewIMUInterface creates an empty IMU sensor interface. Only opts.Logger is
// used.
func NewIMUInterface(opts *hal.Options) *IMUInterface {
	var logger *hal.Options
	if opts != nil {
		logger = &hal.Options{Logger: opts.Logger}
	}
	return &IMUInterface{hal.New[IMUHandle]("imu sensor", logger)}
}
