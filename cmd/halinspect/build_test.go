package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/halkit/internal/descriptor"
)

func TestBuild_GroupsJointsByMode(t *testing.T) {
	robot := &descriptor.Robot{
		Joints: []descriptor.Joint{
			{Name: "wheel_left", Mode: descriptor.ModeVelocity},
			{Name: "wheel_right", Mode: descriptor.ModeVelocity},
			{Name: "shoulder", Mode: descriptor.ModeEffort},
		},
		Sensors: []descriptor.Sensor{
			{Name: "base_imu", Kind: descriptor.KindIMU, Frame: "base_link"},
		},
	}

	r, err := build(robot)
	require.NoError(t, err)

	require.Equal(t, []string{
		"effort joint command",
		"imu sensor",
		"joint state",
		"velocity joint command",
	}, r.manager.Names())

	states, err := r.manager.Resources("joint state")
	require.NoError(t, err)
	require.Equal(t, []string{"shoulder", "wheel_left", "wheel_right"}, states)

	vels, err := r.manager.Resources("velocity joint command")
	require.NoError(t, err)
	require.Equal(t, []string{"wheel_left", "wheel_right"}, vels)
}

func TestBuild_ClaimWalk(t *testing.T) {
	robot := &descriptor.Robot{
		Joints: []descriptor.Joint{
			{Name: "arm", Mode: descriptor.ModeEffort},
		},
	}

	r, err := build(robot)
	require.NoError(t, err)
	require.Len(t, r.commands, 1)

	require.NoError(t, printClaims(r))
	require.Equal(t, []string{"arm"}, r.commands[0].Claims())
}

func TestBuild_NoSensors(t *testing.T) {
	robot := &descriptor.Robot{
		Joints: []descriptor.Joint{{Name: "j1", Mode: descriptor.ModeEffort}},
	}

	r, err := build(robot)
	require.NoError(t, err)

	_, err = r.manager.Get("imu sensor")
	require.Error(t, err, "no sensor interface without sensors")
}
