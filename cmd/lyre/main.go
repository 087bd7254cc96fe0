package main

import "lyre/interpreter-go/cmd/lyre/commands"

func main() {
	commands.Execute()
}
