//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path into memory read-only and returns its contents.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}

// RW is a writable MAP_SHARED mapping of a file. Writes land in the page
// cache immediately and are visible to other processes mapping the same
// file; Sync forces them to disk.
type RW struct {
	f    *os.File
	data []byte
}

// MapRW opens (creating if needed) the file at path, grows it to at least
// size bytes, and maps the first size bytes shared read-write. A size of 0
// maps the file's current length.
func MapRW(path string, size int64) (*RW, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if size == 0 {
		size = info.Size()
	}
	if size <= 0 {
		f.Close()
		return nil, fmt.Errorf("mmfile: nothing to map in %s", path)
	}
	if size > int64(^uint(0)>>1) {
		f.Close()
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	if info.Size() < size {
		if err := f.Truncate(size); err != nil {
			f.Close()
			return nil, err
		}
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &RW{f: f, data: data}, nil
}

// Data returns the mapped bytes.
func (m *RW) Data() []byte { return m.data }

// Sync flushes the mapping to disk.
func (m *RW) Sync() error {
	if m.data == nil {
		return nil
	}
	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close unmaps and closes the file. Closing twice is a no-op.
func (m *RW) Close() error {
	if m.data != nil {
		err := unix.Munmap(m.data)
		m.data = nil
		if err != nil && !errors.Is(err, unix.EINVAL) {
			m.f.Close()
			m.f = nil
			return err
		}
	}
	if m.f == nil {
		return nil
	}
	err := m.f.Close()
	m.f = nil
	return err
}
