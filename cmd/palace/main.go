package main

import "github.com/mcoot/palacegame-go/internal/cli"

func main() {
	cli.Execute()
}
