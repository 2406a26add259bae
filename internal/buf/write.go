package buf

import (
	"encoding/binary"
	"io"
	"math"
)

// WriteU32 writes a little-endian uint32 to w.
func WriteU32(w io.Writer, v uint32) error {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	_, err := w.Write(tmp[:])
	return err
}

// WriteU64 writes a little-endian uint64 to w.
func WriteU64(w io.Writer, v uint64) error {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	_, err := w.Write(tmp[:])
	return err
}

// WriteF64 writes v's IEEE 754 bit pattern to w, little-endian.
func WriteF64(w io.Writer, v float64) error {
	return WriteU64(w, math.Float64bits(v))
}

// ReadU32From reads a little-endian uint32 from r.
func ReadU32From(r io.Reader) (uint32, error) {
	var tmp [4]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(tmp[:]), nil
}

// ReadU64From reads a little-endian uint64 from r.
func ReadU64From(r io.Reader) (uint64, error) {
	var tmp [8]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(tmp[:]), nil
}

// ReadF64From reads a little-endian IEEE 754 double from r.
func ReadF64From(r io.Reader) (float64, error) {
	bits, err := ReadU64From(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}
