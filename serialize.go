package main

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
)

// Serialize writes data, which must have a fixed size, in little endian.
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

// SerializeSlice writes the length of the slice followed by its elements.
func SerializeSlice[T any](buf *bytes.Buffer, s []T) {
	Serialize(buf, int64(len(s)))
	Serialize(buf, s)
}

func DeserializeSlice[T any](buf *bytes.Buffer, s *[]T) {
	var n int64
	Deserialize(buf, &n)
	*s = make([]T, n)
	Deserialize(buf, *s)
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	w := zlib.NewWriter(buf)
	_, err := w.Write(data)
	Check(err)
	Check(w.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	r, err := zlib.NewReader(bytes.NewReader(data))
	Check(err)
	defer func(r io.ReadCloser) { Check(r.Close()) }(r)
	unzipped, err := io.ReadAll(r)
	Check(err)
	return unzipped
}
