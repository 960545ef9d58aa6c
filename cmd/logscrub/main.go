package main

// main is the entry point for the logscrub CLI.
func main() {
	Execute()
}
