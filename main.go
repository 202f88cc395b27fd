package main

import "position-sync/cmd"

func main() {
	cmd.Execute()
}
