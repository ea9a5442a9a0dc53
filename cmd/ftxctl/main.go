package main

import (
	"github.com/tradekit/ftx/pkg/cmd"
)

func main() {
	cmd.Execute()
}
