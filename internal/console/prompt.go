package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrTokenCount = errors.New("expected 2 coordinates")
	ErrNotNumbers = errors.New("coordinates must be positive numbers")
)

var promptHints = map[error]string{
	ErrTokenCount: "Enter 2 coordinates!",
	ErrNotNumbers: "Enter numbers!",
}

// ParseTarget reads "row col" as two positive integers.
func ParseTarget(line string) (row, col int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, ErrTokenCount
	}
	nums := make([]int, 2)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || strings.HasPrefix(f, "+") {
			return 0, 0, ErrNotNumbers
		}
		nums[i] = n
	}
	return nums[0], nums[1], nil
}

// Prompt asks the person at the terminal for a target and re-asks until the
// line parses.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Prompt) ReadTarget(ctx context.Context) (int, int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		fmt.Fprint(p.out, "Your move: ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, 0, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, 0, io.EOF
		}
		row, col, err := ParseTarget(p.in.Text())
		if err != nil {
			fmt.Fprintf(p.out, " %s \n", promptHints[err])
			continue
		}
		return row, col, nil
	}
}
