package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/colorvector/capriblue"
)

// runRender executes one page build, the same pipeline the server runs
// per request, and writes the result to a file or stdout.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	lang := fs.String("lang", "", "language code (overrides the page URL query)")
	page := fs.String("page", "/", "page URL whose lang query selects the language")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	app := capriblue.New(cfg)

	pageURL, err := url.Parse(*page)
	if err != nil {
		return fmt.Errorf("parse page url: %w", err)
	}
	if *lang != "" {
		q := pageURL.Query()
		q.Set("lang", *lang)
		pageURL.RawQuery = q.Encode()
	}

	rendered, err := app.Bootstrap(context.Background(), pageURL)
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = os.Stdout.Write(rendered)
		return err
	}
	if err := os.WriteFile(*out, rendered, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Printf("  wrote %s\n", *out)
	return nil
}
