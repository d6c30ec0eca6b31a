// Package joint provides joint handles and the registries that expose them.
//
// A StateHandle reads a joint's position, velocity and effort through
// pointers into caller-owned storage (typically slots the hardware driver
// writes every cycle). A CommandHandle adds a writable command slot.
//
// StateInterface hands out state handles without claiming; CommandInterface
// claims the joint on every lookup, so handing a command handle to a
// controller marks the joint as exclusively in use for that cycle.
package joint
