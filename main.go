package main

import "rankings-sync/cmd"

func main() {
	cmd.Execute()
}
