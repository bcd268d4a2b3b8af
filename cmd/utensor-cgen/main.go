package main

import (
	"github.com/neil-tan/utensor-cgen/pkg/cmd"
)

func main() {
	cmd.Execute()
}
