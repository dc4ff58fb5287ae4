// Package main provides the entry point for the Easel CLI.
package main

func main() {
	Execute()
}
