package main

import (
	"fmt"

	"github.com/fwojciec/doxie"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	links, err := deps.Links.ExtractLinks(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	return writeJSON(deps.Stdout, links)
}
