package clawmachine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrUnexpectedLine marks a line that isn't the block line expected next.
	ErrUnexpectedLine = errors.New("unexpected line")
	// ErrTruncated marks input that stops partway through a block.
	ErrTruncated = errors.New("input ends mid-machine")
)

// ParseError reports a line that doesn't fit the machine block format.
type ParseError struct {
	File string // empty when parsing a bare reader
	Line int    // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.File != "" {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	return fmt.Sprintf("%s: %q: %v", loc, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseState is the line a block expects next.
type parseState int

const (
	awaitA parseState = iota
	awaitB
	awaitPrize
)

var linePatterns = [...]*regexp.Regexp{
	awaitA:     regexp.MustCompile(`^Button A: X\+(-?\d+), Y\+(-?\d+)$`),
	awaitB:     regexp.MustCompile(`^Button B: X\+(-?\d+), Y\+(-?\d+)$`),
	awaitPrize: regexp.MustCompile(`^Prize: X=(-?\d+), Y=(-?\d+)$`),
}

func (s parseState) String() string {
	switch s {
	case awaitA:
		return "Button A"
	case awaitB:
		return "Button B"
	case awaitPrize:
		return "Prize"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// ParseFile reads every machine in the file at path.
func ParseFile(path string) ([]Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read machines: %w", err)
	}
	defer f.Close()

	ms, err := Parse(f)
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.File = path
	}
	return ms, err
}

// Parse reads machine blocks from r. Each block is a Button A, Button B and
// Prize line, in that order; blank lines between blocks are ignored.
func Parse(r io.Reader) ([]Machine, error) {
	var (
		ms    []Machine
		cur   Machine // record in progress
		state = awaitA
		lineN int
		last  string
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineN++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if state == awaitA {
				continue
			}
			return nil, &ParseError{Line: lineN, Err: fmt.Errorf("%w: want %s", ErrUnexpectedLine, state)}
		}
		last = line

		v, err := parseLine(state, line)
		if err != nil {
			return nil, &ParseError{Line: lineN, Text: line, Err: err}
		}
		switch state {
		case awaitA:
			cur.A = v
			state = awaitB
		case awaitB:
			cur.B = v
			state = awaitPrize
		case awaitPrize:
			cur.Prize = v
			ms = append(ms, cur)
			cur, state = Machine{}, awaitA
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if state != awaitA {
		return nil, &ParseError{Line: lineN, Text: last, Err: fmt.Errorf("%w: want %s", ErrTruncated, state)}
	}
	return ms, nil
}

func parseLine(state parseState, line string) (Vec, error) {
	m := linePatterns[state].FindStringSubmatch(line)
	if m == nil {
		return Vec{}, fmt.Errorf("%w: want %s", ErrUnexpectedLine, state)
	}
	x, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Vec{}, err
	}
	y, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Vec{}, err
	}
	return Vec{X: x, Y: y}, nil
}

// Write renders ms in the block format Parse reads, one blank line between blocks.
func Write(w io.Writer, ms []Machine) error {
	bw := bufio.NewWriter(w)
	for i, m := range ms {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString(m.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
