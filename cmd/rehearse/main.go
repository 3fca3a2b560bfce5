package main

import "github.com/rehearse-dev/rehearse/internal/cli"

func main() {
	cli.Execute()
}
