package iterate

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
)

// Lines returns an iterator over the lines of r, without trailing
// newlines. A read error silently ends the sequence; use [ReadLines]
// when errors matter.
func Lines(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	}
}

// ReadLines reads the named file and returns its lines.
func ReadLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("iterate: read %s: %w", name, err)
	}
	return lines, nil
}
