package clawmachine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
`

func TestParseSample(t *testing.T) {
	ms, err := Parse(strings.NewReader(sampleInput))
	require.NoError(t, err)
	assert.Equal(t, sample, ms)
	assert.EqualValues(t, 480, TotalCost(ms).Cost)
}

func TestParseLayouts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"no separator", strings.ReplaceAll(sampleInput, "\n\n", "\n"), 4},
		{"no trailing newline", strings.TrimSuffix(sampleInput, "\n"), 4},
		{"extra blank lines", "\n\n" + strings.ReplaceAll(sampleInput, "\n\n", "\n\n\n") + "\n\n", 4},
		{"crlf", strings.ReplaceAll(sampleInput, "\n", "\r\n"), 4},
		{"signed values", "Button A: X+-3, Y+4\nButton B: X+1, Y+-1\nPrize: X=-7, Y=0\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := Parse(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Len(t, ms, tt.want)
		})
	}

	ms, err := Parse(strings.NewReader("Button A: X+-3, Y+4\nButton B: X+1, Y+-1\nPrize: X=-7, Y=0\n"))
	require.NoError(t, err)
	assert.Equal(t, []Machine{{A: Vec{-3, 4}, B: Vec{1, -1}, Prize: Vec{-7, 0}}}, ms)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		err  error
	}{
		{"buttons swapped", "Button B: X+1, Y+2\nButton A: X+1, Y+2\nPrize: X=1, Y=2\n", 1, ErrUnexpectedLine},
		{"prize early", "Button A: X+1, Y+2\nPrize: X=1, Y=2\n", 2, ErrUnexpectedLine},
		{"prize uses plus", "Button A: X+1, Y+2\nButton B: X+1, Y+2\nPrize: X+1, Y+2\n", 3, ErrUnexpectedLine},
		{"not a number", "Button A: X+one, Y+2\n", 1, ErrUnexpectedLine},
		{"blank inside block", "Button A: X+1, Y+2\n\nButton B: X+1, Y+2\nPrize: X=1, Y=2\n", 2, ErrUnexpectedLine},
		{"truncated", sampleInput + "\nButton A: X+1, Y+2\nButton B: X+3, Y+4\n", 18, ErrTruncated},
		{"overflow", "Button A: X+99999999999999999999, Y+2\n", 1, strconv.ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := Parse(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Nil(t, ms)
			assert.ErrorIs(t, err, tt.err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{File: "input_1", Line: 5, Text: "Prize: X=1", Err: ErrUnexpectedLine}
	assert.Equal(t, `input_1:5: "Prize: X=1": unexpected line`, err.Error())

	err.File = ""
	assert.Equal(t, `line 5: "Prize: X=1": unexpected line`, err.Error())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input_1")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o644))

	ms, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample, ms)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte("Button A: X+1, Y+1\nnope\n"), 0o644))
	_, err = ParseFile(bad)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, bad, pe.File)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, err.Error(), bad+":2")

	_, err = ParseFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestWriteRoundTrip(t *testing.T) {
	ms := append(slices.Clone(sample), Machine{A: Vec{-1, 0}, B: Vec{0, 0}, Prize: Vec{12, -12}})

	var sb strings.Builder
	require.NoError(t, Write(&sb, ms))
	got, err := Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, ms, got)

	sb.Reset()
	require.NoError(t, Write(&sb, sample))
	assert.Equal(t, sampleInput, sb.String())
}

func TestWriteEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, nil))
	assert.Empty(t, sb.String())
}
