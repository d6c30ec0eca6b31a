package descriptor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_FullDescriptor(t *testing.T) {
	input := `
# two-wheel base with an arm
[joint "wheel_left"]
mode=velocity
[joint "wheel_right"]
mode=velocity
[joint "shoulder"]

[sensor "base_imu"]
kind=imu
frame=base_link
[sensor "wrist_ft"]
kind=force_torque
frame=wrist_link
`
	robot, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, []Joint{
		{Name: "wheel_left", Mode: ModeVelocity},
		{Name: "wheel_right", Mode: ModeVelocity},
		{Name: "shoulder", Mode: ModeEffort},
	}, robot.Joints)

	require.Equal(t, []Sensor{
		{Name: "base_imu", Kind: KindIMU, Frame: "base_link"},
		{Name: "wrist_ft", Kind: KindForceTorque, Frame: "wrist_link"},
	}, robot.Sensors)
}

func TestParse_DefaultsAndWhitespace(t *testing.T) {
	input := "  [joint \"elbow\"]  \r\n  mode = position  \r\n"
	robot, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []Joint{{Name: "elbow", Mode: ModePosition}}, robot.Joints)
}

func TestParse_Windows1252Decoding(t *testing.T) {
	// 0xE9 is é in Windows-1252; the parsed name must come out as UTF-8.
	input := []byte("[joint \"v\xe9rin\"]\n")
	robot, err := Parse(strings.NewReader(string(input)))
	require.NoError(t, err)
	require.Equal(t, "vérin", robot.Joints[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown section", "[motor \"m1\"]\n", "line 1: unknown section"},
		{"unterminated section", "[joint \"elbow\n", "line 1: unterminated section"},
		{"empty name", "[joint \"\"]\n", "line 1: empty name"},
		{"key before section", "mode=effort\n", "before any section"},
		{"junk line", "[joint \"elbow\"]\nwat\n", "line 2: expected section or key=value"},
		{"unknown joint key", "[joint \"elbow\"]\nframe=base\n", "unknown key \"frame\""},
		{"unknown mode", "[joint \"elbow\"]\nmode=torque\n", "unknown mode \"torque\""},
		{"unknown sensor kind", "[sensor \"s\"]\nkind=sonar\n", "unknown kind \"sonar\""},
		{"sensor without kind", "[sensor \"s\"]\nframe=base\n", "has no kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.desc")
	require.NoError(t, os.WriteFile(path, []byte("[joint \"j1\"]\n"), 0o644))

	robot, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, robot.Joints, 1)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.desc"))
	require.Error(t, err)
}
