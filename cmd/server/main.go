package main

import "travelplanner/cmd/server/cmd"

func main() {
	cmd.Execute()
}
