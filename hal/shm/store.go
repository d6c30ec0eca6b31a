package shm

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/joshuapare/halkit/internal/mmfile"
)

const (
	magic   = "HALS"
	version = 1

	headerSize = 16
	slotSize   = 8

	magicOffset   = 0
	versionOffset = 4
	countOffset   = 8
)

// Store is a fixed-size array of float64 slots backed by a mapped file.
type Store struct {
	m     *mmfile.RW
	slots []float64
}

// Create creates (or truncates into shape) the slot store at path with the
// given number of slots, all zero.
func Create(path string, slots int) (*Store, error) {
	if slots <= 0 {
		return nil, fmt.Errorf("shm: slot count must be positive, got %d", slots)
	}
	m, err := mmfile.MapRW(path, headerSize+int64(slots)*slotSize)
	if err != nil {
		return nil, err
	}
	data := m.Data()
	copy(data[magicOffset:], magic)
	binary.LittleEndian.PutUint32(data[versionOffset:], version)
	binary.LittleEndian.PutUint32(data[countOffset:], uint32(slots))
	clear(data[headerSize:])

	st := &Store{m: m, slots: slotView(data, slots)}
	if err := st.Flush(); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// Open maps an existing slot store at path and validates its header.
func Open(path string) (*Store, error) {
	m, err := mmfile.MapRW(path, 0)
	if err != nil {
		return nil, err
	}
	slots, err := checkHeader(m.Data())
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return &Store{m: m, slots: slotView(m.Data(), slots)}, nil
}

// Slots returns the number of slots in the store.
func (s *Store) Slots() int { return len(s.slots) }

// Slot returns a pointer to slot i, valid until Close. Out-of-range indexes
// return nil.
func (s *Store) Slot(i int) *float64 {
	if s.slots == nil || i < 0 || i >= len(s.slots) {
		return nil
	}
	return &s.slots[i]
}

// Flush forces outstanding slot writes to the file.
func (s *Store) Flush() error {
	if s.m == nil {
		return ErrClosed
	}
	return s.m.Sync()
}

// Close releases the mapping. Slot pointers handed out earlier must not be
// used afterwards. Closing twice is a no-op.
func (s *Store) Close() error {
	if s.m == nil {
		return nil
	}
	err := s.m.Close()
	s.m = nil
	s.slots = nil
	return err
}

// Dump returns a snapshot of the slot values in the store at path, without
// keeping it open.
func Dump(path string) ([]float64, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	slots, err := checkHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	out := make([]float64, slots)
	copy(out, slotView(data, slots))
	return out, nil
}

// checkHeader validates the store header and returns the slot count.
func checkHeader(data []byte) (int, error) {
	if len(data) < headerSize {
		return 0, ErrTruncated
	}
	if string(data[magicOffset:magicOffset+len(magic)]) != magic {
		return 0, ErrBadMagic
	}
	if v := binary.LittleEndian.Uint32(data[versionOffset:]); v != version {
		return 0, fmt.Errorf("%w: %d", ErrBadVersion, v)
	}
	slots := int(binary.LittleEndian.Uint32(data[countOffset:]))
	if len(data) < headerSize+slots*slotSize {
		return 0, ErrTruncated
	}
	return slots, nil
}

// slotView reinterprets the slot region of data as a []float64 without
// copying. The mapping is 8-aligned because it starts at a page (or heap
// allocation) boundary and the header is 16 bytes.
func slotView(data []byte, slots int) []float64 {
	if slots == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[headerSize])), slots)
}
