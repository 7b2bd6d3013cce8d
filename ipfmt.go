package ipfmt

import (
	"bytes"
	"io"
)

// Value is a value that has passed classification and is ready for
// dotted rendering. Values come from the category constructors ([Int],
// [Text], [Seq], [NewList], [Uniform2] and friends); there is no way to
// build one from a type outside the accepted categories.
type Value interface {
	appendDotted(dst []byte) []byte
}

// Write renders each value as one line: tokens joined by a single '.',
// terminated by one newline. Values are independent; the only error
// source is the sink itself.
func Write(w io.Writer, values ...Value) error {
	buf := make([]byte, 0, 64)
	for _, v := range values {
		buf = v.appendDotted(buf[:0])
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Marshal renders values and returns the bytes.
func Marshal(values ...Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, values...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
