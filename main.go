package main

import (
	"os"

	"github.com/kvesta/clawsec/cli"
	"github.com/kvesta/clawsec/internal/log"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
