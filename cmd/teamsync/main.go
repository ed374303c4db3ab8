// Package main is the entry point for the TeamSync backend.
package main

func main() {
	Execute()
}
