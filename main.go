package main

import (
	"github.com/fomox/tracescout/internal/interfaces/cli"
)

func main() {
	cli.Execute()
}
