package main

import "github.com/statforge/parametric/parametric/cmd"

func main() {
	cmd.Execute()
}
