package main

import (
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/colorvector/capriblue"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	case "render":
		if err := runRender(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "new":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "Usage: capriblue new <language-code>")
			os.Exit(1)
		}
		if err := runNew(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("capriblue %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// loadConfig builds the site configuration from environment variables.
func loadConfig() (capriblue.SiteConfig, error) {
	var cfg capriblue.SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	app := capriblue.New(cfg)
	return app.Start()
}

func printUsage() {
	fmt.Println(`capriblue - A localized landing page engine built with Go, Echo, and templ

Usage:
  capriblue <command> [arguments]

Commands:
  serve         Run the landing page server (default)
  render        Render the landing page once and write it out
  new <lang>    Create a starter locale document for a language
  version       Print the capriblue version
  help          Show this help message

Examples:
  capriblue serve
  capriblue render -lang fr -o index.html
  capriblue new pt-BR

Configuration comes from environment variables: SITE_NAME, SITE_URL,
ADDR, DEFAULT_LANGUAGE, I18N_PATH, I18N_DIR, MOUNT_ID.`)
}
