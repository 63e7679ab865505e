package main

import (
	"fmt"
	"os"

	"github.com/mandelsoft/exprgraph/cmds/exprgraph/app"
)

func main() {
	cmd := app.New()
	cmd.SetArgs(os.Args[1:])
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
