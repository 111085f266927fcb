package main

import "github.com/pfrederiksen/sane-sg23/internal/cli"

func main() {
	cli.Execute()
}
