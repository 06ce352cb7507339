// Package npy writes NumPy .npy (format version 1.0) files containing
// little-endian float32 arrays, so packed tensors can be loaded on the
// Python side with np.load.
package npy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Write writes a float32 array with the given shape to w. The data is
// expected in C order and its length must equal the product of the
// shape dimensions.
func Write(w io.Writer, data []float32, shape []int) error {
	n := 1
	for _, s := range shape {
		n *= s
	}
	if n != len(data) {
		return fmt.Errorf("npy: shape %v does not match data length %d", shape, len(data))
	}

	header, err := buildHeader(shape)
	if err != nil {
		return fmt.Errorf("npy: build header: %w", err)
	}
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("npy: write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("npy: write data: %w", err)
	}
	return nil
}

// buildHeader assembles the magic string, version, and the python
// dict literal describing dtype and shape, padded so the total header
// length is a multiple of 16 as the format requires.
func buildHeader(shape []int) ([]byte, error) {
	var dict bytes.Buffer
	dict.WriteString("{'descr': '<f4', 'fortran_order': False, 'shape': (")
	for i, s := range shape {
		fmt.Fprintf(&dict, "%d", s)
		if i < len(shape)-1 {
			dict.WriteString(", ")
		}
	}
	if len(shape) == 1 {
		dict.WriteString(",")
	}
	dict.WriteString("), }")

	// 10 = magic (6) + version (2) + header-length field (2)
	unpadded := dict.Len() + 10 + 1 // +1 for the trailing newline
	padding := (16 - unpadded%16) % 16

	var header bytes.Buffer
	header.Write([]byte{0x93, 'N', 'U', 'M', 'P', 'Y', 0x01, 0x00})
	dictLen := uint16(dict.Len() + padding + 1)
	if err := binary.Write(&header, binary.LittleEndian, dictLen); err != nil {
		return nil, err
	}
	header.Write(dict.Bytes())
	header.Write(bytes.Repeat([]byte{' '}, padding))
	header.WriteByte('\n')

	return header.Bytes(), nil
}
