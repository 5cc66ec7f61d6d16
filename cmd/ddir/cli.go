package main

import (
	"context"
	"io"

	"github.com/fwojciec/ddir"
)

// Dependencies holds the collaborators and configuration for command
// execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Store    ddir.DescriberStore
	Resolver ddir.PathResolver
}

// CLI defines the command-line interface structure for Kong. Describe is
// the default command, so `ddir <path>` works without naming it.
type CLI struct {
	Describe DescribeCmd `cmd:"" default:"withargs" help:"Print the description of a path"`
	Add      AddCmd      `cmd:"" help:"Attach a description to a path"`
	Pattern  PatternCmd  `cmd:"" help:"Attach a description template to children of a path"`
}

// DescribeCmd is the "describe" command.
type DescribeCmd struct {
	Path string `arg:"" help:"Path to describe"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Path        string `arg:"" help:"Path to describe"`
	Description string `arg:"" help:"Description to attach"`
}

// PatternCmd is the "pattern" subcommand.
type PatternCmd struct {
	Path     string `arg:"" help:"Parent path"`
	Template string `arg:"" help:"Description template; * stands for the child's name"`
}

// loadOrCreate loads the persisted describer, starting fresh only when no
// state has ever been saved. Corrupt state aborts the operation, so a bad
// config file is never overwritten.
func loadOrCreate(deps *Dependencies) (*ddir.Describer, error) {
	d, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		if ddir.ErrorCode(err) == ddir.ENOTFOUND {
			return ddir.NewDescriber(), nil
		}
		return nil, err
	}
	return d, nil
}
