// Package main provides the entry point for the finparse CLI application.
package main

import (
	"fmt"
	"os"

	"warren/finparse/cmd/analyze"
	"warren/finparse/cmd/categories"
	"warren/finparse/cmd/classify"
	"warren/finparse/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
