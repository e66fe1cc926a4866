package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/slither/grid"
)

// parsePuzzleFile reads a puzzle in the text format: a first line "R C",
// followed by R lines of C whitespace-separated tokens. Each token is a
// digit 0-3 (a clue) or one of '.', '-', '_' (an absent clue). Blank lines
// and lines starting with '#' are skipped wherever a content line is
// expected, so puzzle files may carry comments and spacing.
func parsePuzzleFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", grid.ErrInvalidGrid, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	dims, err := nextContentLine(sc)
	if err != nil {
		return nil, err
	}
	dimFields := strings.Fields(dims)
	if len(dimFields) != 2 {
		return nil, fmt.Errorf("%w: expected \"rows cols\", got %q", grid.ErrInvalidGrid, dims)
	}
	rows, err := strconv.Atoi(dimFields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad row count %q", grid.ErrInvalidGrid, dimFields[0])
	}
	cols, err := strconv.Atoi(dimFields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad col count %q", grid.ErrInvalidGrid, dimFields[1])
	}

	clues := make([]grid.Clue, 0, rows*cols)
	for r := 0; r < rows; r++ {
		line, err := nextContentLine(sc)
		if err != nil {
			return nil, err
		}
		tokens := strings.Fields(line)
		if len(tokens) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", grid.ErrInvalidGrid, r, len(tokens), cols)
		}
		for _, tok := range tokens {
			c, err := parseClueToken(tok)
			if err != nil {
				return nil, err
			}
			clues = append(clues, c)
		}
	}

	return grid.New(rows, cols, clues)
}

// nextContentLine returns the next non-blank, non-comment line, or an error
// if the scanner is exhausted first.
func nextContentLine(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return line, nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", grid.ErrInvalidGrid, err)
	}

	return "", fmt.Errorf("%w: unexpected end of file", grid.ErrInvalidGrid)
}

// parseClueToken parses one cell token: a digit 0-3, or one of '.', '-', '_'
// for an absent clue.
func parseClueToken(tok string) (grid.Clue, error) {
	switch tok {
	case ".", "-", "_":
		return grid.Absent, nil
	}
	if len(tok) == 1 && tok[0] >= '0' && tok[0] <= '3' {
		return grid.Clue(tok[0] - '0'), nil
	}

	return 0, fmt.Errorf("%w: bad clue token %q", grid.ErrInvalidGrid, tok)
}
