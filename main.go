package main

import "deckdrop/cmd"

func main() {
	cmd.Execute()
}
