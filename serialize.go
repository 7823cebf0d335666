package algohankel

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Binary transform format: a fixed header followed by the grid vectors
// and the dense operator as little-endian float64. Persisting a transform
// trades file size for skipping the O(N^2) operator build on reload.
const (
	transformMagic   = uint32(0x4b4e4841) // "AHNK"
	transformVersion = uint32(1)

	// maxSerializedSize bounds the sample count accepted from a file so a
	// corrupt header cannot demand an absurd allocation.
	maxSerializedSize = 1 << 20
)

type transformHeader struct {
	Magic   uint32
	Version uint32
	Order   float64
	SphDim  int64
	Size    int64
	Axis    int64
	Radius  float64
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err
}

// WriteTo serializes the transform in the versioned binary format.
func (q *Transform) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	hdr := transformHeader{
		Magic:   transformMagic,
		Version: transformVersion,
		Order:   q.p,
		SphDim:  int64(q.n),
		Size:    int64(q.size),
		Axis:    int64(q.axis),
		Radius:  q.rMax,
	}

	if err := binary.Write(cw, binary.LittleEndian, &hdr); err != nil {
		return cw.n, fmt.Errorf("failed to write transform header: %w", err)
	}

	for _, v := range [][]float64{q.r, q.k, q.j1sq, q.scaleR, q.scaleK, q.op.RawMatrix().Data} {
		if err := binary.Write(cw, binary.LittleEndian, v); err != nil {
			return cw.n, fmt.Errorf("failed to write transform data: %w", err)
		}
	}

	return cw.n, nil
}

// ReadTransform deserializes a transform written by WriteTo. The grid and
// operator are taken from the file as-is; only structural consistency is
// checked.
func ReadTransform(r io.Reader) (*Transform, error) {
	var hdr transformHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("failed to read transform header: %w", err)
	}

	if hdr.Magic != transformMagic || hdr.Version != transformVersion {
		return nil, ErrInvalidFormat
	}

	if hdr.Size < 1 || hdr.Size > maxSerializedSize || hdr.SphDim < 1 || hdr.Axis < 0 {
		return nil, ErrInvalidFormat
	}

	if hdr.Order < 0 || math.IsNaN(hdr.Order) ||
		hdr.Radius <= 0 || math.IsInf(hdr.Radius, 0) || math.IsNaN(hdr.Radius) {
		return nil, ErrInvalidFormat
	}

	size := int(hdr.Size)

	q := &Transform{
		p:    hdr.Order,
		n:    int(hdr.SphDim),
		size: size,
		axis: int(hdr.Axis),
		rMax: hdr.Radius,
	}

	vecs := make([][]float64, 5)
	for i := range vecs {
		vecs[i] = make([]float64, size)
		if err := binary.Read(r, binary.LittleEndian, vecs[i]); err != nil {
			return nil, fmt.Errorf("failed to read transform data: %w", err)
		}
	}

	q.r, q.k, q.j1sq, q.scaleR, q.scaleK = vecs[0], vecs[1], vecs[2], vecs[3], vecs[4]

	opData := make([]float64, size*size)
	if err := binary.Read(r, binary.LittleEndian, opData); err != nil {
		return nil, fmt.Errorf("failed to read transform operator: %w", err)
	}

	q.op = mat.NewDense(size, size, opData)

	// K and the forward scale are derived quantities; recompute them
	// rather than trust two more fields to stay consistent. From
	// r_i = z_i R / S and k_i = z_i K / S with K = S/R it follows that
	// K = R k_N / r_N.
	if q.r[size-1] <= 0 || q.k[size-1] <= 0 {
		return nil, ErrInvalidFormat
	}

	q.kMax = hdr.Radius * q.k[size-1] / q.r[size-1]
	q.scaleRK = math.Pow(hdr.Radius/q.kMax, 0.5*float64(q.n+1))

	return q, nil
}

// SaveTransform writes the transform to a file in the WriteTo format.
func SaveTransform(filename string, q *Transform) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create transform file: %w", err)
	}

	defer f.Close()

	if _, err := q.WriteTo(f); err != nil {
		return fmt.Errorf("failed to export transform: %w", err)
	}

	return nil
}

// LoadTransform reads a transform from a file written by SaveTransform.
func LoadTransform(filename string) (*Transform, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open transform file: %w", err)
	}

	defer f.Close()

	q, err := ReadTransform(f)
	if err != nil {
		return nil, fmt.Errorf("failed to import transform: %w", err)
	}

	return q, nil
}
