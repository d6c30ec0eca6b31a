package main

import (
	"fmt"

	"github.com/joshuapare/halkit/cmd/halinspect/logger"
	"github.com/joshuapare/halkit/hal"
	"github.com/joshuapare/halkit/hal/joint"
	"github.com/joshuapare/halkit/hal/sensor"
	"github.com/joshuapare/halkit/internal/descriptor"
)

// jointData is the local storage backing one joint's handles.
type jointData struct {
	pos, vel, eff, cmd float64
}

// imuData is the local storage backing one IMU's handle.
type imuData struct {
	orientation [4]float64
	angularVel  [3]float64
	linearAccel [3]float64
}

// ftData is the local storage backing one force/torque sensor's handle.
type ftData struct {
	force, torque [3]float64
}

// rig is the HAL built from a descriptor, backed by zeroed local storage.
type rig struct {
	manager  *hal.Manager
	commands []*joint.CommandInterface
}

// build wires the descriptor's joints and sensors into registries under one
// interface manager. Command interfaces are created per joint mode, so a
// robot with only velocity joints gets no effort interface.
func build(robot *descriptor.Robot) (*rig, error) {
	opts := &hal.Options{Logger: logger.L}

	r := &rig{manager: hal.NewManager(opts)}
	states := joint.NewStateInterface(opts)
	commands := make(map[descriptor.Mode]*joint.CommandInterface)

	for _, j := range robot.Joints {
		d := &jointData{}
		state, err := joint.NewStateHandle(j.Name, &d.pos, &d.vel, &d.eff)
		if err != nil {
			return nil, err
		}
		states.Register(state)

		cmd, err := joint.NewCommandHandle(state, &d.cmd)
		if err != nil {
			return nil, err
		}
		iface, ok := commands[j.Mode]
		if !ok {
			iface = newCommandInterface(j.Mode, opts)
			commands[j.Mode] = iface
			r.commands = append(r.commands, iface)
			r.manager.Register(iface)
		}
		iface.Register(cmd)
		logger.Debug("registered joint", "name", j.Name, "mode", string(j.Mode))
	}
	r.manager.Register(states)

	var (
		imus *sensor.IMUInterface
		fts  *sensor.ForceTorqueInterface
	)
	for _, s := range robot.Sensors {
		switch s.Kind {
		case descriptor.KindIMU:
			d := &imuData{}
			h, err := sensor.NewIMUHandle(s.Name, s.Frame, &d.orientation, &d.angularVel, &d.linearAccel)
			if err != nil {
				return nil, err
			}
			if imus == nil {
				imus = sensor.NewIMUInterface(opts)
				r.manager.Register(imus)
			}
			imus.Register(h)
		case descriptor.KindForceTorque:
			d := &ftData{}
			h, err := sensor.NewForceTorqueHandle(s.Name, s.Frame, &d.force, &d.torque)
			if err != nil {
				return nil, err
			}
			if fts == nil {
				fts = sensor.NewForceTorqueInterface(opts)
				r.manager.Register(fts)
			}
			fts.Register(h)
		default:
			return nil, fmt.Errorf("halinspect: unknown sensor kind %q", s.Kind)
		}
		logger.Debug("registered sensor", "name", s.Name, "kind", s.Kind)
	}

	return r, nil
}

func newCommandInterface(mode descriptor.Mode, opts *hal.Options) *joint.CommandInterface {
	switch mode {
	case descriptor.ModeVelocity:
		return joint.NewVelocityInterface(opts)
	case descriptor.ModePosition:
		return joint.NewPositionInterface(opts)
	default:
		return joint.NewEffortInterface(opts)
	}
}

func printInterfaces(r *rig) {
	fmt.Println("interfaces:")
	for _, name := range r.manager.Names() {
		resources, err := r.manager.Resources(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %s (%d)\n", name, len(resources))
		for _, res := range resources {
			fmt.Printf("    %s\n", res)
		}
	}
}

// printClaims fetches every command handle once and reports the claims the
// lookups left behind.
func printClaims(r *rig) error {
	fmt.Println("claims after fetching every command handle:")
	for _, iface := range r.commands {
		for _, name := range iface.Names() {
			if _, err := iface.Get(name); err != nil {
				return err
			}
		}
		fmt.Printf("  %s: %v\n", iface.Name(), iface.Claims())
	}
	return nil
}
