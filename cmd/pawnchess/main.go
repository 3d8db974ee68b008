package main

import "github.com/mcoot/pawnchess-go/internal/cli"

func main() {
	cli.Execute()
}
