package main

import "tripvault/internal/cli"

func main() {
	cli.Execute()
}
