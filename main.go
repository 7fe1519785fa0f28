package main

import "runsvc/cmd"

func main() {
	cmd.Execute()
}
