package main

import (
	"os"

	"github.com/borsel2002/yollar-burada/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
