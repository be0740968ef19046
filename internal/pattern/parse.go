package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wormlife/pkg/core"
)

// ParseGrid reads a board from '#'-alive / '.'-dead text lines. The first
// line fixes the width; every line must match it. Returns the board size
// and the alive coordinate set.
func ParseGrid(r io.Reader) (core.Size, []core.Coord, error) {
	var (
		size  core.Size
		alive []core.Coord
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if size.H == 0 {
			size.W = len(line)
		}
		if len(line) != size.W {
			return core.Size{}, nil, fmt.Errorf("line %d: width %d, expected %d", size.H+1, len(line), size.W)
		}
		for col, ch := range line {
			switch ch {
			case '#':
				alive = append(alive, core.Coord{Row: size.H, Col: col})
			case '.':
			default:
				return core.Size{}, nil, fmt.Errorf("line %d: unexpected character %q", size.H+1, ch)
			}
		}
		size.H++
	}
	if err := sc.Err(); err != nil {
		return core.Size{}, nil, err
	}
	if size.W == 0 || size.H == 0 {
		return core.Size{}, nil, fmt.Errorf("empty board")
	}
	return size, alive, nil
}

// ParseWormholes reads wormhole pairs, one per line, as "r1,c1 r2,c2".
// Blank lines and lines starting with '#' are skipped. Endpoint validation
// is the registry's job; this only parses.
func ParseWormholes(r io.Reader) ([][2]core.Coord, error) {
	var pairs [][2]core.Coord
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected two endpoints, got %d", lineNo, len(fields))
		}
		var pair [2]core.Coord
		for i, field := range fields {
			c, err := parseCoord(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			pair[i] = c
		}
		pairs = append(pairs, pair)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func parseCoord(s string) (core.Coord, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return core.Coord{}, fmt.Errorf("malformed coordinate %q, want row,col", s)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return core.Coord{}, fmt.Errorf("malformed row in %q", s)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return core.Coord{}, fmt.Errorf("malformed column in %q", s)
	}
	return core.Coord{Row: r, Col: c}, nil
}
