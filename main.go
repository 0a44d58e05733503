package main

import "github.com/noteline/noteline/cmd"

func main() {
	cmd.Execute()
}
