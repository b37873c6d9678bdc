// Command resincalc calculates epoxy resin quantities from the terminal.
//
// Usage:
//
//	resincalc rectangle --length 24 --width 12 --depth 1
//	resincalc circle --diameter 4 --depth 0.5 --output json
package main

import "github.com/hapkiduki/resin-calc/internal/interfaces/cli"

func main() {
	cli.Execute()
}
