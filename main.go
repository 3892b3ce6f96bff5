package main

import (
	"os"

	"github.com/lromero/almacen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
