package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
)

// parseVec reads "x,y".
func parseVec(s string) (cp.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return cp.Vector{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("point %q: %w", s, err)
	}
	return cp.Vector{X: x, Y: y}, nil
}

// parseAgents reads "x,y;x,y;...". An empty string means the default spawns.
func parseAgents(s string) ([]cp.Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []cp.Vector
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := parseVec(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
