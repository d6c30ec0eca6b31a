// Package descriptor parses the plain-text robot descriptor format used by
// the halkit tooling.
//
// A descriptor lists the joints and sensors one robot exposes:
//
//	# two-wheel base
//	[joint "wheel_left"]
//	mode=velocity
//	[joint "wheel_right"]
//	mode=velocity
//	[sensor "base_imu"]
//	kind=imu
//	frame=base_link
//
// Section lines open a joint or sensor; key=value lines configure the most
// recently opened section. Blank lines and lines starting with # are
// ignored. Descriptors produced by legacy tooling arrive in the platform's
// local encoding (typically Windows-1252), so input is decoded to UTF-8
// before parsing.
package descriptor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Mode selects how a joint is commanded.
type Mode string

const (
	ModeEffort   Mode = "effort"
	ModeVelocity Mode = "velocity"
	ModePosition Mode = "position"
)

// Sensor kinds understood by the tooling.
const (
	KindIMU         = "imu"
	KindForceTorque = "force_torque"
)

// Joint describes one named joint. Mode defaults to effort.
type Joint struct {
	Name string
	Mode Mode
}

// Sensor describes one named sensor.
type Sensor struct {
	Name  string
	Kind  string // KindIMU or KindForceTorque
	Frame string // optional reference frame
}

// Robot is a parsed descriptor.
type Robot struct {
	Joints  []Joint
	Sensors []Sensor
}

const (
	commentPrefix = "#"
	jointPrefix   = `[joint "`
	sensorPrefix  = `[sensor "`
	sectionSuffix = `"]`

	maxLineSize = 64 * 1024
)

// ParseFile parses the descriptor at path.
func ParseFile(path string) (*Robot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses a descriptor from r.
func Parse(r io.Reader) (*Robot, error) {
	// Legacy tooling writes descriptors in the local encoding, which is
	// typically Windows-1252; decode to UTF-8 before scanning.
	utf8Reader := transform.NewReader(r, charmap.Windows1252.NewDecoder())

	scanner := bufio.NewScanner(utf8Reader)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	robot := &Robot{}
	var (
		joint  *Joint
		sensor *Sensor
		lineNo int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name, isJoint, err := parseSection(line)
			if err != nil {
				return nil, fmt.Errorf("descriptor: line %d: %w", lineNo, err)
			}
			if isJoint {
				robot.Joints = append(robot.Joints, Joint{Name: name, Mode: ModeEffort})
				joint = &robot.Joints[len(robot.Joints)-1]
				sensor = nil
			} else {
				robot.Sensors = append(robot.Sensors, Sensor{Name: name})
				sensor = &robot.Sensors[len(robot.Sensors)-1]
				joint = nil
			}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("descriptor: line %d: expected section or key=value, got %q", lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case joint != nil:
			if err := applyJointKey(joint, key, value); err != nil {
				return nil, fmt.Errorf("descriptor: line %d: %w", lineNo, err)
			}
		case sensor != nil:
			if err := applySensorKey(sensor, key, value); err != nil {
				return nil, fmt.Errorf("descriptor: line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("descriptor: line %d: %q before any section", lineNo, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("descriptor: scanning: %w", err)
	}

	for _, s := range robot.Sensors {
		if s.Kind == "" {
			return nil, fmt.Errorf("descriptor: sensor %q has no kind", s.Name)
		}
	}
	return robot, nil
}

// parseSection parses a [joint "name"] or [sensor "name"] line.
func parseSection(line string) (name string, isJoint bool, err error) {
	switch {
	case strings.HasPrefix(line, jointPrefix):
		name = strings.TrimPrefix(line, jointPrefix)
		isJoint = true
	case strings.HasPrefix(line, sensorPrefix):
		name = strings.TrimPrefix(line, sensorPrefix)
	default:
		return "", false, fmt.Errorf("unknown section %q", line)
	}
	if !strings.HasSuffix(name, sectionSuffix) {
		return "", false, fmt.Errorf("unterminated section %q", line)
	}
	name = strings.TrimSuffix(name, sectionSuffix)
	if name == "" {
		return "", false, fmt.Errorf("empty name in section %q", line)
	}
	return name, isJoint, nil
}

func applyJointKey(j *Joint, key, value string) error {
	switch key {
	case "mode":
		switch Mode(value) {
		case ModeEffort, ModeVelocity, ModePosition:
			j.Mode = Mode(value)
		default:
			return fmt.Errorf("joint %q: unknown mode %q", j.Name, value)
		}
	default:
		return fmt.Errorf("joint %q: unknown key %q", j.Name, key)
	}
	return nil
}

func applySensorKey(s *Sensor, key, value string) error {
	switch key {
	case "kind":
		switch value {
		case KindIMU, KindForceTorque:
			s.Kind = value
		default:
			return fmt.Errorf("sensor %q: unknown kind %q", s.Name, value)
		}
	case "frame":
		s.Frame = value
	default:
		return fmt.Errorf("sensor %q: unknown key %q", s.Name, key)
	}
	return nil
}
