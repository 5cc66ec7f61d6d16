package main

import "fmt"

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	path, err := deps.Resolver.Resolve(c.Path)
	if err != nil {
		return err
	}

	d, err := loadOrCreate(deps)
	if err != nil {
		return err
	}

	d.AddDescription(path, c.Description)

	if err := deps.Store.Save(deps.Ctx, d); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added description for %s\n", path)
	return nil
}
