//go:build !unix

// Package mmfile provides platform-specific helpers for memory-mapping
// state slot files.
package mmfile

import (
	"fmt"
	"os"
)

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

// RW falls back to a heap buffer that is written back to the file on Sync
// and Close. Unlike the unix mapping, writes are not visible to other
// processes until synced.
type RW struct {
	f    *os.File
	data []byte
}

// MapRW opens (creating if needed) the file at path, grows it to at least
// size bytes, and returns a buffer of the first size bytes. A size of 0
// buffers the file's current length.
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
	if info.Size() < size {
		if err := f.Truncate(size); err != nil {
			f.Close()
			return nil, err
		}
	}
	data := make([]byte, size)
	if _, err := f.ReadAt(data, 0); err != nil {
		f.Close()
		return nil, err
	}
	return &RW{f: f, data: data}, nil
}

// Data returns the buffered bytes.
func (m *RW) Data() []byte { return m.data }

// Sync writes the buffer back to the file and flushes it.
func (m *RW) Sync() error {
	if m.f == nil || m.data == nil {
		return nil
	}
	if _, err := m.f.WriteAt(m.data, 0); err != nil {
		return err
	}
	return m.f.Sync()
}

// Close writes the buffer back and closes the file. Closing twice is a
// no-op.
func (m *RW) Close() error {
	if m.f == nil {
		return nil
	}
	err := m.Sync()
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	m.f = nil
	m.data = nil
	return err
}
