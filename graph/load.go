package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedHeader is returned when the `n m` header line is missing
// or does not parse as two non-negative integers.
var ErrMalformedHeader = errors.New("graph: malformed header")

// ErrVertexIndexRange is returned when an edge line names a vertex
// outside [0, n).
var ErrVertexIndexRange = errors.New("graph: vertex index out of range")

// ErrTruncatedInput is returned when fewer than m edge lines are
// present before EOF.
var ErrTruncatedInput = errors.New("graph: truncated input")

// ErrNegativeWeight is returned when an edge line carries a negative
// weight (spec.md §1 Non-goal: BMSSP assumes non-negative weights).
var ErrNegativeWeight = errors.New("graph: negative edge weight")

// Load reads the whitespace-separated text format spec.md §6 defines:
// a header line "n m", followed by m lines "from to weight".
func Load(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, m, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}

	g := New(n)
	for i := 0; i < m; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("graph: reading edge %d: %w", i, err)
			}
			return nil, fmt.Errorf("%w: expected %d edges, got %d", ErrTruncatedInput, m, i)
		}
		from, to, weight, err := parseEdgeLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("graph: edge %d: %w", i, err)
		}
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, fmt.Errorf("%w: edge %d references vertex outside [0,%d)", ErrVertexIndexRange, i, n)
		}
		if weight < 0 {
			return nil, fmt.Errorf("%w: edge %d has weight %v", ErrNegativeWeight, i, weight)
		}
		g.AddEdge(from, to, weight)
	}

	return g, nil
}

func readHeader(scanner *bufio.Scanner) (n, m int, err error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		return 0, 0, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}
	var fields [2]string
	count, err := fmt.Sscan(scanner.Text(), &fields[0], &fields[1])
	if err != nil || count != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, scanner.Text())
	}
	n, err1 := strconv.Atoi(fields[0])
	m, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, scanner.Text())
	}
	return n, m, nil
}

func parseEdgeLine(line string) (from, to int, weight float64, err error) {
	var fromS, toS, weightS string
	count, scanErr := fmt.Sscan(line, &fromS, &toS, &weightS)
	if scanErr != nil || count != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrTruncatedInput, line)
	}
	from, err1 := strconv.Atoi(fromS)
	to, err2 := strconv.Atoi(toS)
	weight, err3 := strconv.ParseFloat(weightS, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrTruncatedInput, line)
	}
	return from, to, weight, nil
}
