package main

import "github.com/fatih/color"

// Output labels: a red Err prefix for errors and missing descriptions, a
// green path for successful lookups. Color is disabled automatically when
// output is not a terminal or NO_COLOR is set.
var (
	errLabel  = color.New(color.FgRed).SprintFunc()
	pathLabel = color.New(color.FgGreen).SprintFunc()
)
