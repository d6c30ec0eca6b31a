// Package shm provides a file-backed store of float64 slots for hardware
// state and commands.
//
// # Overview
//
// A Store maps a small slot file into memory (on unix via mmap, elsewhere
// via a buffered fallback) and hands out *float64 pointers into the mapping.
// Those pointers plug directly into joint and sensor handles, so a driver
// process can publish state that a consumer process reads through the same
// file with no copying in between.
//
// # File Format
//
//	offset  size  field
//	0       4     magic "HALS"
//	4       4     format version (currently 1), little endian
//	8       4     slot count, little endian
//	12      4     reserved (zero)
//	16      8*n   slots, IEEE 754 little endian
//
// # Usage
//
//	st, err := shm.Create("/run/robot/state", 4)
//	if err != nil { ... }
//	defer st.Close()
//
//	pos := st.Slot(0)
//	vel := st.Slot(1)
//	// register handles built on pos/vel, then each cycle:
//	*pos, *vel = readEncoder()
//	st.Flush()
//
// # Thread Safety
//
// Store carries no locking, matching the rest of the HAL: slot access from
// multiple goroutines or processes must be coordinated by the caller.
package shm
