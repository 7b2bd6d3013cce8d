package ipfmt

// Text classifies a string for verbatim rendering. The content is never
// inspected or escaped: a '.' inside the string is not a separator and
// is written as-is.
func Text(s string) Value { return textValue(s) }

type textValue string

func (v textValue) appendDotted(dst []byte) []byte {
	return append(dst, v...)
}
