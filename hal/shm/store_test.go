package shm

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state.hals")
}

func TestCreateOpenRoundtrip(t *testing.T) {
	path := storePath(t)

	st, err := Create(path, 3)
	require.NoError(t, err)
	require.Equal(t, 3, st.Slots())

	*st.Slot(0) = 1.5
	*st.Slot(2) = -2.25
	require.NoError(t, st.Flush())
	require.NoError(t, st.Close())

	st2, err := Open(path)
	require.NoError(t, err)
	defer st2.Close()

	require.Equal(t, 3, st2.Slots())
	require.Equal(t, 1.5, *st2.Slot(0))
	require.Equal(t, 0.0, *st2.Slot(1))
	require.Equal(t, -2.25, *st2.Slot(2))
}

func TestSlotPointerWritesThrough(t *testing.T) {
	st, err := Create(storePath(t), 1)
	require.NoError(t, err)
	defer st.Close()

	p := st.Slot(0)
	require.NotNil(t, p)

	*p = 3.14
	require.Equal(t, 3.14, *st.Slot(0), "pointer and slot view share storage")
}

func TestSlotOutOfRange(t *testing.T) {
	st, err := Create(storePath(t), 2)
	require.NoError(t, err)
	defer st.Close()

	require.Nil(t, st.Slot(-1))
	require.Nil(t, st.Slot(2))
}

func TestCreateRejectsBadSlotCount(t *testing.T) {
	_, err := Create(storePath(t), 0)
	require.Error(t, err)
	_, err = Create(storePath(t), -4)
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	path := storePath(t)
	st, err := Create(path, 2)
	require.NoError(t, err)
	*st.Slot(0) = 7
	*st.Slot(1) = 8
	require.NoError(t, st.Close())

	vals, err := Dump(path)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 8}, vals)
}

func TestOpenRejectsBadMagic(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, make([]byte, headerSize+slotSize), 0o644))

	_, err := Open(path)
	require.ErrorIs(t, err, ErrBadMagic)

	_, err = Dump(path)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestOpenRejectsBadVersion(t *testing.T) {
	path := storePath(t)
	buf := make([]byte, headerSize+slotSize)
	copy(buf, magic)
	binary.LittleEndian.PutUint32(buf[versionOffset:], 99)
	binary.LittleEndian.PutUint32(buf[countOffset:], 1)
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	_, err := Open(path)
	require.ErrorIs(t, err, ErrBadVersion)
}

func TestOpenRejectsTruncated(t *testing.T) {
	path := storePath(t)

	// Header claims 4 slots but the file only holds one.
	buf := make([]byte, headerSize+slotSize)
	copy(buf, magic)
	binary.LittleEndian.PutUint32(buf[versionOffset:], version)
	binary.LittleEndian.PutUint32(buf[countOffset:], 4)
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	_, err := Open(path)
	require.ErrorIs(t, err, ErrTruncated)

	// Shorter than the header entirely.
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))
	_, err = Open(path)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestUseAfterClose(t *testing.T) {
	st, err := Create(storePath(t), 1)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	require.Nil(t, st.Slot(0))
	require.ErrorIs(t, st.Flush(), ErrClosed)
	require.NoError(t, st.Close(), "double close is a no-op")
}
