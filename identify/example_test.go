package identify_test

import (
	"fmt"

	"github.com/earthobs/eoid/identify"
)

func ExampleResolve() {
	ident, err := identify.Resolve("LC80390222013076EDC00")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ident.Mission(), ident.StartTime().Format("2006-01-02"))
	// Output: Landsat 8 2013-03-17
}
