package main

import (
	"github.com/c9s/vista/pkg/cmd"
)

func main() {
	cmd.Execute()
}
