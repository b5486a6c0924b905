// Package load reads samples from a two-column text file.
//
// Each line holds an integer x and a floating-point y separated by whitespace:
//
//	1 2.0
//	2 4.0
//
// Blank lines are skipped. Any further fields on a line are ignored.
package load

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"nyiyui.ca/hato/kaiki"
)

// File reads and parses the samples in path.
func File(path string) (kaiki.Samples, error) {
	lines, err := readFile(path)
	if err != nil {
		return kaiki.Samples{}, err
	}
	s, err := Parse(lines)
	if err != nil {
		return kaiki.Samples{}, fmt.Errorf("%s: %w", path, err)
	}
	zap.S().Debugw("loaded samples", "path", path, "lines", len(lines), "samples", s.Len())
	return s, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &FileNotFoundError{Path: path, Err: err}
	} else if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines reads all lines from r, without line terminators.
// Lines may be of any length.
func ReadLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		} else if err != nil {
			return nil, err
		}
	}
}

// Parse parses lines into samples, keeping their order.
// The first line that fails to parse is returned as a *ParseError.
func Parse(lines []string) (kaiki.Samples, error) {
	points := make([]kaiki.Point, 0, len(lines))
	for i, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		p, err := ParseLine(i+1, raw)
		if err != nil {
			return kaiki.Samples{}, err
		}
		points = append(points, p)
	}
	return kaiki.FromPoints(points), nil
}

// ParseLine parses a single line. lineNo is only used for errors.
func ParseLine(lineNo int, raw string) (kaiki.Point, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return kaiki.Point{}, &ParseError{Line: lineNo, Raw: raw, Err: ErrTooFewFields}
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return kaiki.Point{}, &ParseError{Line: lineNo, Raw: raw, Err: fmt.Errorf("x: %w", err)}
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return kaiki.Point{}, &ParseError{Line: lineNo, Raw: raw, Err: fmt.Errorf("y: %w", err)}
	}
	return kaiki.Point{X: x, Y: y}, nil
}
