package main

import "labelconductor/internal/cmd"

func main() {
	cmd.Execute()
}
