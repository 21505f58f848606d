package viewproj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/viewproj/projection"
)

// Run builds the volume from cfg and processes in according to cfg.Mode:
//
//   - project:   each "x y z" line is a scene point; prints screen x y depth.
//   - unproject: each "x y depth" line is a screen point; prints the scene point.
//   - matrix:    in is ignored; prints the composed projection matrix row by row.
//
// Blank lines and lines starting with '#' are skipped. logger may be nil.
func Run(cfg Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	vv, err := cfg.Volume()
	if err != nil {
		return fmt.Errorf("build volume: %w", err)
	}
	pt, err := projection.New(vv)
	if err != nil {
		return err
	}
	// Scale 1 is the identity and keeps the projection on its fast path.
	s := cfg.AuxScale
	pt.SetTransform(mgl64.Scale3D(s, s, s))

	if logger != nil {
		_, applied := pt.AuxTransform()
		logger.Printf("%s, aux transform applied: %t", vv, applied)
	}

	if cfg.Mode == ModeMatrix {
		return writeMatrix(out, pt.ProjectionMatrix())
	}
	if in == nil {
		return errors.New("input is required")
	}

	var (
		scanner = bufio.NewScanner(in)
		line    int
		points  int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		var q mgl64.Vec3
		if cfg.Mode == ModeUnproject {
			if q, err = pt.Inverse64(p); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
		} else {
			q = pt.Project64(p)
		}
		if _, err := fmt.Fprintf(out, "%.6f %.6f %.6f\n", q[0], q[1], q[2]); err != nil {
			return err
		}
		points++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if logger != nil {
		logger.Printf("%s: %d points", cfg.Mode, points)
	}
	return nil
}

func parsePoint(text string) (mgl64.Vec3, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want 3 coordinates, got %d", len(fields))
	}
	var p mgl64.Vec3
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
		p[i] = v
	}
	return p, nil
}

func writeMatrix(out io.Writer, m mgl64.Mat4) error {
	for row := 0; row < 4; row++ {
		r := m.Row(row)
		if _, err := fmt.Fprintf(out, "%.6f %.6f %.6f %.6f\n", r[0], r[1], r[2], r[3]); err != nil {
			return err
		}
	}
	return nil
}
