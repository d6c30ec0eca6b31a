// Package hal provides the named-resource registry core of the hardware
// abstraction layer.
//
// # Overview
//
// Hardware resources (joints, sensors, actuators) are wrapped in handle
// values, and a Registry maps resource names to handles of one handle type.
// A registry is configured once, at construction, with a claim policy that
// decides whether looking a handle up also claims exclusive use of the
// resource behind it.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Handle: the minimal capability of a registrable value (a name)
//   - Registry: generic name-to-handle container with policy-mediated lookup
//   - ClaimPolicy: lookup side-effect selector (Claiming or NonClaiming)
//   - Owner: the collaborator that performs the actual claim bookkeeping
//   - Claims: a ready-made set-based Owner implementation
//   - Manager: keeps a robot's concrete resource interfaces by name
//
// # Claim Policies
//
// The policy is fixed for the registry's lifetime:
//
//	// Read-only introspection: lookups never claim.
//	states := hal.New[StateHandle]("joint state", nil)
//
//	// Exclusive use: every successful lookup claims the resource.
//	var claims hal.Claims
//	cmds := hal.New[CommandHandle]("joint command", &hal.Options{
//	    Policy: hal.Claiming,
//	    Owner:  &claims,
//	})
//
// This lets the same container type serve both "list what the robot has"
// use cases and "take exclusive control of an actuator" use cases without
// duplicating lookup and error logic.
//
// # Duplicate Registration
//
// Registering a handle under a name that is already taken replaces the
// stored handle (last write wins) and emits a single warning-level log
// record naming the replaced resource and the registry. It is not an error,
// and there is no way to opt out; callers wanting stricter semantics must
// check Names() first.
//
// # Thread Safety
//
// Registry instances are not thread-safe. The registry performs no internal
// synchronization; concurrent Register or Get calls on the same instance
// must be serialized by the caller. Owner implementations may carry their
// own locking discipline, but that is outside this package.
//
// # Related Packages
//
//   - github.com/joshuapare/halkit/hal/joint: joint state/command handles
//   - github.com/joshuapare/halkit/hal/sensor: IMU and force/torque handles
//   - github.com/joshuapare/halkit/hal/shm: file-backed float64 slot store
package hal
