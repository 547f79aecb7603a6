package main

import "livecli/cmd"

func main() {
	cmd.Execute()
}
