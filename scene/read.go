package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Read parses a scene. It does not check that the header count matches the
// number of particle lines; use Check for that.
func Read(r io.Reader) (*Header, []Particle, error) {
	s := bufio.NewScanner(r)

	if !s.Scan() {
		if err := s.Err(); err != nil { return nil, nil, err }
		return nil, nil, fmt.Errorf("Scene is empty.")
	}
	hd, err := parseHeader(s.Text())
	if err != nil { return nil, nil, err }

	ps := []Particle{}
	if hd.Count > 0 { ps = make([]Particle, 0, hd.Count) }

	var vals [Fields]float64
	for line := 2; s.Scan(); line++ {
		if err := parseLine(s.Text(), line, vals[:]); err != nil {
			return nil, nil, err
		}
		ps = append(ps, Particle{
			Mass:   vals[0],
			Pos:    r3.Vec{X: vals[1], Y: vals[2], Z: vals[3]},
			Vel:    r3.Vec{X: vals[4], Y: vals[5], Z: vals[6]},
			Color:  Color{vals[7], vals[8], vals[9]},
			Radius: vals[10],
		})
	}
	if err := s.Err(); err != nil { return nil, nil, err }

	return hd, ps, nil
}

// ReadFile parses the scene file fname.
func ReadFile(fname string) (*Header, []Particle, error) {
	f, err := os.Open(fname)
	if err != nil { return nil, nil, err }
	defer f.Close()

	hd, ps, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("Could not read '%s': %w", fname, err)
	}
	return hd, ps, nil
}

func parseHeader(text string) (*Header, error) {
	tok := strings.Fields(text)
	if len(tok) != HeaderFields {
		return nil, fmt.Errorf(
			"Header has %d fields, but %d are required.",
			len(tok), HeaderFields,
		)
	}

	n, err := strconv.Atoi(tok[0])
	if err != nil {
		return nil, fmt.Errorf("Header count '%s' is not an integer.", tok[0])
	}
	p1, err := strconv.ParseFloat(tok[1], 64)
	if err != nil { return nil, fmt.Errorf("Header: %w", err) }
	p2, err := strconv.ParseFloat(tok[2], 64)
	if err != nil { return nil, fmt.Errorf("Header: %w", err) }

	return &Header{n, p1, p2}, nil
}

func parseLine(text string, line int, vals []float64) error {
	tok := strings.Fields(text)
	if len(tok) != Fields {
		return fmt.Errorf(
			"Line %d has %d fields, but %d are required.",
			line, len(tok), Fields,
		)
	}

	for i := range tok {
		x, err := strconv.ParseFloat(tok[i], 64)
		if err != nil { return fmt.Errorf("Line %d: %w", line, err) }
		vals[i] = x
	}
	return nil
}
