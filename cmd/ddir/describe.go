package main

import "fmt"

// Run executes the describe command.
func (c *DescribeCmd) Run(deps *Dependencies) error {
	path, err := deps.Resolver.Resolve(c.Path)
	if err != nil {
		return err
	}

	d, err := deps.Store.Load(deps.Ctx)
	if err != nil {
		return err
	}

	description, ok := d.Describe(path)
	if !ok {
		// A path without a description is a normal outcome, not a failure.
		fmt.Fprintf(deps.Stdout, "%s: %s\n", errLabel("Err"), "no available description")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s: %s\n", pathLabel(path), description)
	return nil
}
