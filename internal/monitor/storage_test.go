package monitor

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskUsage_ReservedBlocks(t *testing.T) {
	snap := DiskUsage("/", FSStats{
		Blocks:       1000,
		BlocksFree:   400,
		BlocksAvail:  380,
		FragmentSize: 4096,
	})

	assert.Equal(t, "/", snap.Mount)
	assert.Equal(t, uint64(4096000), snap.TotalBytes)
	assert.Equal(t, uint64(1556480), snap.AvailableBytes)
	assert.Equal(t, uint64(2457600), snap.UsedBytes)
	assert.InDelta(t, 60.0, snap.UsagePercent, 1e-9)
	assert.Less(t, snap.UsedBytes+snap.AvailableBytes, snap.TotalBytes)
}

func TestDiskUsage_ZeroTotal(t *testing.T) {
	snap := DiskUsage("/", FSStats{FragmentSize: 4096})
	assert.Equal(t, 0.0, snap.UsagePercent)
	assert.Equal(t, uint64(0), snap.UsedBytes)
}

func TestStorageMonitor_DefaultPath(t *testing.T) {
	m := NewStorageMonitor("")
	assert.Equal(t, "/", m.path)
	assert.Equal(t, "storage", m.Name())
}

func TestStorageMonitor_InjectedStatFS(t *testing.T) {
	var queried string
	m := NewStorageMonitorWithStatFS("/data", func(path string) (FSStats, error) {
		queried = path
		return FSStats{Blocks: 100, BlocksFree: 50, BlocksAvail: 50, FragmentSize: 1024}, nil
	})

	data, err := m.Collect()
	require.NoError(t, err)
	assert.Equal(t, "/data", queried)

	snap, ok := data.(*DiskSnapshot)
	require.True(t, ok, "expected *DiskSnapshot, got %T", data)
	assert.Equal(t, "/data", snap.Mount)
	assert.InDelta(t, 50.0, snap.UsagePercent, 1e-9)
}

func TestStorageMonitor_StatFSFailure(t *testing.T) {
	m := NewStorageMonitorWithStatFS("/", func(string) (FSStats, error) {
		return FSStats{}, errors.New("permission denied")
	})

	_, err := m.Sample()
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStorageMonitor_Root(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("statfs is only wired on linux")
	}

	snap, err := NewStorageMonitor("/").Sample()
	require.NoError(t, err)

	assert.NotZero(t, snap.TotalBytes)
	assert.LessOrEqual(t, snap.UsedBytes, snap.TotalBytes)
	assert.GreaterOrEqual(t, snap.UsagePercent, 0.0)
	assert.LessOrEqual(t, snap.UsagePercent, 100.0)
}

func TestStorageMonitor_NonExistentPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("statfs is only wired on linux")
	}

	_, err := NewStorageMonitor("/nonexistent/path/that/does/not/exist").Sample()
	assert.ErrorIs(t, err, ErrUnavailable)
}
