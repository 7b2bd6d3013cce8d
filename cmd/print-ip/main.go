// Command print-ip demonstrates the dotted formatter over every
// accepted shape.
package main

import (
	"fmt"
	"os"

	ipfmt "github.com/MatthewNaumenko/otus-homework4"
)

func main() {
	err := ipfmt.Write(os.Stdout,
		ipfmt.Int(int8(-1)),
		ipfmt.Int(int16(0)),
		ipfmt.Int(int32(2130706433)),
		ipfmt.Int(int64(8875824491850138409)),
		ipfmt.Text("Hello, World!"),
		ipfmt.Seq([]int{100, 200, 300, 400}),
		ipfmt.NewList(400, 300, 200, 100),
		ipfmt.Uniform4(ipfmt.Tuple4[int, int, int, int]{A: 123, B: 456, C: 789, D: 0}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "print-ip:", err)
		os.Exit(1)
	}
}
