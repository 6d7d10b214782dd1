package monitor

import (
	"fmt"
)

// FSStats are the statvfs figures the disk sampler needs.
type FSStats struct {
	Blocks       uint64
	BlocksFree   uint64
	BlocksAvail  uint64
	FragmentSize uint64
}

// StatFSFunc queries filesystem statistics for the filesystem holding path.
type StatFSFunc func(path string) (FSStats, error)

type StorageMonitor struct {
	path   string
	statfs StatFSFunc
}

func NewStorageMonitor(path string) *StorageMonitor {
	return NewStorageMonitorWithStatFS(path, statFS)
}

func NewStorageMonitorWithStatFS(path string, statfs StatFSFunc) *StorageMonitor {
	if path == "" {
		path = "/"
	}
	return &StorageMonitor{path: path, statfs: statfs}
}

func (m *StorageMonitor) Name() string {
	return "storage"
}

func (m *StorageMonitor) Collect() (any, error) {
	return m.Sample()
}

func (m *StorageMonitor) Sample() (*DiskSnapshot, error) {
	stats, err := m.statfs(m.path)
	if err != nil {
		return nil, fmt.Errorf("%w: statfs %s: %v", ErrUnavailable, m.path, err)
	}
	snap := DiskUsage(m.path, stats)
	return &snap, nil
}

// DiskUsage converts block counts to bytes. Used space counts every free
// block while available space counts only blocks usable by unprivileged
// users, so used + available can be less than total on filesystems with
// reserved blocks.
func DiskUsage(mount string, st FSStats) DiskSnapshot {
	snap := DiskSnapshot{
		Mount:          mount,
		TotalBytes:     st.Blocks * st.FragmentSize,
		AvailableBytes: st.BlocksAvail * st.FragmentSize,
	}
	snap.UsedBytes = saturatingSub(snap.TotalBytes, st.BlocksFree*st.FragmentSize)

	if snap.TotalBytes > 0 {
		snap.UsagePercent = 100 * float64(snap.UsedBytes) / float64(snap.TotalBytes)
	}
	return snap
}
