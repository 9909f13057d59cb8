package main

import (
	"os"

	"github.com/bindstor/bindstor/pkg/bindctl/cmdparser"
)

func main() {
	err := cmdparser.Bindctl.Execute()
	if err != nil {
		os.Exit(1)
	}
}
