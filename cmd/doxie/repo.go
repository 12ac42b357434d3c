package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/doxie"
	"github.com/fwojciec/doxie/repo"
	doxslog "github.com/fwojciec/doxie/slog"
)

// splitRepo parses an "owner/repo" argument.
func splitRepo(arg string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(arg, "/")
	if !ok || owner == "" || name == "" {
		return "", "", doxie.Errorf(doxie.EINVALID, "repository must be owner/repo, got %q", arg)
	}
	return owner, name, nil
}

// Run executes the repo command.
func (c *RepoCmd) Run(deps *Dependencies) error {
	owner, name, err := splitRepo(c.Repo)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	source := doxslog.NewLoggingSource(&repo.Source{
		Client:    deps.Repo,
		Extractor: deps.Markdown,
		Config: doxie.RepoConfig{
			Owner:        owner,
			Repo:         name,
			Ref:          c.Ref,
			IncludeGlobs: c.Glob,
			MaxFiles:     c.MaxFiles,
		},
	}, deps.Logger)

	docs, err := source.Fetch(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doxie.ErrorMessage(err))
		return err
	}

	return writeJSON(deps.Stdout, docs)
}
