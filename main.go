package main

import "github.com/tapegoji/FEM-Magnetics-Toolbox/cmd"

func main() {
	cmd.Execute()
}
