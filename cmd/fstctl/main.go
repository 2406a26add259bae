// Command fstctl inspects and manipulates weighted finite-state transducers
// stored in the engine's text or binary formats.
package main

func main() {
	execute()
}
