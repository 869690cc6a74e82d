package main

import "github.com/aberke/fractals/cmd"

func main() {
	cmd.Execute()
}
