// SPDX-License-Identifier: MIT
package main

import "github.com/skaphos/colortags/cmd/colortags"

// execute is overridable in tests.
var execute = colortags.Execute

func main() {
	execute()
}
