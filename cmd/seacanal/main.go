package main

import "github.com/katalvlaran/seacanal/cmd/seacanal/cmd"

func main() {
	cmd.Execute()
}
