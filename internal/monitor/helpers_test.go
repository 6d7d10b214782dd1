package monitor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// procStatLine builds a /proc/<pid>/stat line with the given utime, stime
// and rss; every other field holds a plausible constant.
func procStatLine(pid int, comm string, utime, stime, rss uint64) string {
	return fmt.Sprintf("%d (%s) S 0 1 1 0 -1 4194560 0 0 0 0 %d %d 0 0 20 0 1 0 100 1000000 %d 18446744073709551615\n",
		pid, comm, utime, stime, rss)
}
