// Package ipfmt renders values as IP-address-like dotted lines, selected
// purely by the value's static type.
//
// Five shapes are accepted. Each has a constructor that classifies the
// value into a [Value]; [Write] and [Marshal] then render every value as
// one line of tokens joined by '.' with a trailing newline:
//
//   - [Int] — any integer type (never bool): the bit pattern is split
//     into unsigned 8-bit groups, most significant first
//   - [Text] — a string, reproduced verbatim
//   - [Seq] — a slice, elements joined with '.'
//   - [List] — a doubly-linked list, same output as [Seq]
//   - [Uniform2], [Uniform3], [Uniform4] — fixed-size tuples whose
//     fields all share one type
//
// # Compile-Time Dispatch
//
// There is no runtime fallback and no reflection on the rendering path.
// [Value] is sealed: the constructors are the only way to obtain one, so
// a value of an unsupported type has no way into [Write] — the program
// simply does not compile. The same holds for a tuple with mixed field
// types: [Tuple4] is heterogeneous by construction, but [Uniform4] only
// accepts Tuple4[T, T, T, T], so a mixed instantiation fails type
// inference instead of failing at runtime:
//
//	ipfmt.Uniform4(ipfmt.Tuple4[uint8, uint8, uint8, uint8]{255, 0, 0, 1}) // "255.0.0.1"
//	ipfmt.Uniform4(ipfmt.Tuple4[uint8, uint8, uint8, string]{...})        // does not compile
//
// # Integers
//
// [Int] reinterprets the value as the unsigned type of identical width,
// so negative inputs render via their two's-complement bit pattern:
//
//	ipfmt.Write(os.Stdout, ipfmt.Int(int32(2130706433))) // 127.0.0.1
//	ipfmt.Write(os.Stdout, ipfmt.Int(int8(-1)))          // 255
//
// # Sequences
//
// [Seq] and [List] hold any element type; elements render through their
// default textual form and the two shapes produce identical output for
// identical elements. An empty sequence renders as a bare newline.
// Nested sequences are not re-joined recursively.
//
// # Classification
//
// [Classify] and [Supported] expose the dispatch rules over
// [reflect.Type] for introspection and diagnostics. They never gate
// rendering; the type checker is the authority.
package ipfmt
