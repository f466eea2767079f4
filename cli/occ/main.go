package main

import (
	"os"

	occcmder "github.com/jivsocc/commandcenter/cmd/occ"
)

func main() {
	cmd := occcmder.NewOccCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
