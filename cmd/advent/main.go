package main

import "advent/cmd/advent/root"

func main() {
	root.Execute()
}
