package main

import (
	"os"

	"netmenu/internal/cli"
)

func main() {
	os.Exit(cli.Run("netmenu", os.Args[1:]))
}
