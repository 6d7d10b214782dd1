//go:build !linux

package monitor

import (
	"fmt"
	"runtime"
)

func statFS(path string) (FSStats, error) {
	return FSStats{}, fmt.Errorf("statfs not supported on %s", runtime.GOOS)
}
