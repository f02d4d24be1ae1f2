package main

import "github.com/Lolirofle/midi-notes-display/cmd"

func main() {
	cmd.Execute()
}
