package main

import "eventreg/cmd/eventreg/cmd"

func main() {
	cmd.Execute()
}
