package main

import "github.com/mcoot/cardbank/internal/cli"

func main() {
	cli.Execute()
}
