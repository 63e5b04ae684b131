// Copyright 2026 The Quarry Authors
// SPDX-License-Identifier: Apache-2.0

package profiles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/quarryhq/quarry/cmd/quarry/cli"
	"github.com/quarryhq/quarry/lib/profile"
	"github.com/quarryhq/quarry/lib/remote"
)

type cmdLogin struct {
	apiKey    string
	noDefault bool

	out io.Writer
}

func (c *cmdLogin) Help() string {
	return `Log in to a remote Quarry region and store the profile.

Takes the profile name and the region's API URL:

  quarry login dev http://quarry.example.com/api/2.0/

The API key is read from --api-key, or prompted for when running
interactively. Credentials are verified against the region before
anything is stored. The new profile becomes the default unless
--no-default is given.`
}

func (c *cmdLogin) Init(parser *cli.Parser) {
	flags := parser.Flags()
	flags.StringVar(&c.apiKey, "api-key", "", "API key for the region (prompted for when omitted)")
	flags.BoolVar(&c.noDefault, "no-default", false, "do not make this the default profile")
}

func (c *cmdLogin) Execute(ctx context.Context, options *cli.Options) error {
	if len(options.Args) != 2 {
		return cli.CommandErrorf("login needs a profile name and a region URL")
	}
	name, baseURL := options.Args[0], options.Args[1]

	apiKey := c.apiKey
	if apiKey == "" {
		key, err := readAPIKey()
		if err != nil {
			return err
		}
		apiKey = key
	}

	session, err := remote.Connect(remote.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Logger:  options.Logger,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Ping(ctx); err != nil {
		if remote.IsStatus(err, http.StatusUnauthorized) || remote.IsStatus(err, http.StatusForbidden) {
			return cli.CommandErrorf("the region rejected the API key (check the key and try again)")
		}
		return fmt.Errorf("verifying credentials against %s: %w", baseURL, err)
	}

	store, err := profile.OpenDefault()
	if err != nil {
		return err
	}
	saved := &profile.Profile{Name: name, URL: session.BaseURL(), APIKey: apiKey}
	if err := store.Save(saved); err != nil {
		return err
	}
	fmt.Fprintf(c.writer(), "Saved profile %q for %s.\n", saved.Name, saved.URL)

	if !c.noDefault {
		if err := store.SetDefault(saved.Name); err != nil {
			return err
		}
		fmt.Fprintf(c.writer(), "%q is now the default profile.\n", saved.Name)
	}
	return nil
}

func (c *cmdLogin) writer() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

// readAPIKey prompts on the terminal with echo disabled. Without a
// terminal there is nothing to prompt, so the key must come from
// --api-key.
func readAPIKey() (string, error) {
	stdin := int(os.Stdin.Fd())
	if !term.IsTerminal(stdin) {
		return "", errors.New("no API key given (use --api-key, or run interactively)")
	}
	fmt.Fprint(os.Stderr, "API key: ")
	key, err := term.ReadPassword(stdin)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	return strings.TrimSpace(string(key)), nil
}
