package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bulga138/hecto/config"
	"github.com/bulga138/hecto/editor"
	"github.com/bulga138/hecto/terminal"
	"github.com/bulga138/hecto/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 1. Parse Arguments
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: hecto [filename]")
		return 1
	}
	var filename string
	if len(args) == 1 {
		filename = args[0]
	}

	// 2. Load Config
	log.SetOutput(io.Discard)
	cfg := config.LoadConfig()

	// 3. Set up logging based on config
	if cfg.EnableLogger {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
		log.Printf("--- Hecto %s Started (Logging Enabled) ---", version.GetFullVersion())
	}

	log.Printf("Config loaded: %+v", cfg)
	log.Printf("File to open: %q", filename)

	// 4. Initialize Terminal and input
	term := terminal.New()
	defer term.Close()
	resize, stopResize := terminal.WatchResize(term)
	defer stopResize()
	events := terminal.NewEventReader(term.Stdin(), resize)

	// 5. Initialize Editor
	e, err := editor.NewEditor(term, events, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing editor: %v\n", err)
		log.Printf("Error initializing editor: %v", err)
		return 1
	}

	// 6. Run the editor
	if err := e.Run(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		log.Printf("Error running editor: %v", err)
		return 1
	}

	log.Println("--- Hecto Exited Cleanly ---")
	return 0
}
