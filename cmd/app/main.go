package main

import (
	"os"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
