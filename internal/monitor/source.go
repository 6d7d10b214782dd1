package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// scanLines feeds every line of r to fn. Lines are not truncated.
func scanLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

// readSource opens a kernel interface and scans it line by line. Failing to
// open it is reported as ErrUnavailable.
func readSource(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	if err := scanLines(f, fn); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// readFirstLine returns the first line of path without its trailing newline.
func readFirstLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return line, nil
}
