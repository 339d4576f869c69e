// Color Cube - scrambles an N×N×N color cube and shows every turn in the terminal.
package main

import (
	"github.com/kenzierocks/color-cube-solver/internal/cli"
)

func main() {
	cli.Execute()
}
