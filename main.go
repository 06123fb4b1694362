package main

import "hillclimb/cmd"

func main() {
	cmd.Execute()
}
