package main

import "fmt"

// Run executes the pattern command.
func (c *PatternCmd) Run(deps *Dependencies) error {
	path, err := deps.Resolver.Resolve(c.Path)
	if err != nil {
		return err
	}

	d, err := loadOrCreate(deps)
	if err != nil {
		return err
	}

	d.AddPattern(path, c.Template)

	if err := deps.Store.Save(deps.Ctx, d); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added pattern for %s\n", path)
	return nil
}
