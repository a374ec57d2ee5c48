package main

import (
	"os"

	"github.com/hashicorp-forge/dsapi/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
