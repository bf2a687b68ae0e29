package main

import "github.com/kasuboski/flixboard/cmd"

func main() {
	cmd.Execute()
}
