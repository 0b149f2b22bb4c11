package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Writer streams a scene to an underlying io.Writer. The header must be
// written first.
type Writer struct {
	w         *bufio.Writer
	prec      int
	buf       []byte
	count, n  int
	hasHeader bool
}

// NewWriter returns a Writer which formats floats with the given number of
// significant digits. A precision of -1 gives the shortest representation
// which round-trips exactly.
func NewWriter(w io.Writer, prec int) *Writer {
	return &Writer{w: bufio.NewWriter(w), prec: prec}
}

// WriteHeader writes the header line.
func (w *Writer) WriteHeader(hd *Header) error {
	if w.hasHeader {
		return fmt.Errorf("Scene header has already been written.")
	} else if hd.Count < 0 {
		return fmt.Errorf("Header has negative particle count %d.", hd.Count)
	}

	w.buf = w.buf[:0]
	w.buf = strconv.AppendInt(w.buf, int64(hd.Count), 10)
	w.buf = w.appendFloats(w.buf, hd.Param1, hd.Param2)
	w.buf = append(w.buf, '\n')

	w.hasHeader, w.count = true, hd.Count
	_, err := w.w.Write(w.buf)
	return err
}

// Write writes a single particle line.
func (w *Writer) Write(p *Particle) error {
	if !w.hasHeader {
		return fmt.Errorf("Particle written before the scene header.")
	} else if w.n >= w.count {
		return fmt.Errorf(
			"Header declares %d particles, but more are being written.",
			w.count,
		)
	}

	w.buf = w.buf[:0]
	w.buf = w.appendFloat(w.buf, p.Mass)
	w.buf = w.appendFloats(
		w.buf,
		p.Pos.X, p.Pos.Y, p.Pos.Z,
		p.Vel.X, p.Vel.Y, p.Vel.Z,
		p.Color.R, p.Color.G, p.Color.B,
		p.Radius,
	)
	w.buf = append(w.buf, '\n')

	w.n++
	_, err := w.w.Write(w.buf)
	return err
}

// Flush flushes buffered lines and returns an error if fewer particles were
// written than the header declared.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil { return err }
	if !w.hasHeader {
		return fmt.Errorf("No scene header was written.")
	} else if w.n != w.count {
		return fmt.Errorf(
			"Header declares %d particles, but only %d were written.",
			w.count, w.n,
		)
	}
	return nil
}

func (w *Writer) appendFloat(buf []byte, x float64) []byte {
	return strconv.AppendFloat(buf, x, 'g', w.prec, 64)
}

func (w *Writer) appendFloats(buf []byte, xs ...float64) []byte {
	for _, x := range xs {
		buf = append(buf, ' ')
		buf = w.appendFloat(buf, x)
	}
	return buf
}

// Write writes a complete scene to wr.
func Write(wr io.Writer, hd *Header, ps []Particle, prec int) error {
	w := NewWriter(wr, prec)
	if err := w.WriteHeader(hd); err != nil { return err }
	for i := range ps {
		if err := w.Write(&ps[i]); err != nil { return err }
	}
	return w.Flush()
}

// WriteFile creates or overwrites the scene file fname. The lines are
// produced by fn and are written to a temporary file in the same directory,
// which replaces fname only if fn and all I/O succeed.
func WriteFile(fname string, prec int, fn func(w *Writer) error) error {
	dir, base := filepath.Split(fname)
	if dir == "" { dir = "." }

	f, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("Could not create scene file '%s': %w", fname, err)
	}
	tmp := f.Name()

	err = writeTo(f, prec, fn)
	if cerr := f.Close(); err == nil { err = cerr }
	if err == nil { err = os.Chmod(tmp, 0644) }
	if err == nil { err = os.Rename(tmp, fname) }

	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("Could not write scene file '%s': %w", fname, err)
	}
	return nil
}

func writeTo(f *os.File, prec int, fn func(w *Writer) error) error {
	w := NewWriter(f, prec)
	if err := fn(w); err != nil { return err }
	return w.Flush()
}
