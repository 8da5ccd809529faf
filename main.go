package main

import "github.com/itsmostafa/docnav/cmd"

func main() {
	cmd.Execute()
}
