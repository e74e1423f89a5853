package main

import (
	"os"

	"source4/dash-etl/cmd/categorize"
	"source4/dash-etl/cmd/compare"
	"source4/dash-etl/cmd/process"
	"source4/dash-etl/cmd/root"
	"source4/dash-etl/cmd/taxonomycmd"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(taxonomycmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
