package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/muesli/termenv"
	"github.com/splitview/splitview/internal/config"
	"github.com/splitview/splitview/internal/divider"
	"github.com/splitview/splitview/internal/ui"
	"github.com/splitview/splitview/internal/ui/common"
)

var Version = "dev"

func main() {
	logFile := flag.String("log", "", "write debug logs to `file`")
	configDir := flag.Bool("config-dir", false, "print the config directory and exit")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Println("splitview", Version)
		os.Exit(0)
	}
	if *configDir {
		fmt.Println(config.GetConfigDir())
		os.Exit(0)
	}

	os.Exit(run(*logFile))
}

func run(logFile string) int {
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "splitview")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, warnings, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	warnings = append(warnings, cfg.UnknownSelectorWarnings()...)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		log.Printf("config warning: %s", w)
	}

	state, err := newState(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	palette := common.NewPaletteFrom(cfg.UI.Colors)
	if termenv.EnvNoColor() {
		palette = common.NewPalette()
	}

	p := tea.NewProgram(ui.New(cfg, state, palette, warnings))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running splitview: %v\n", err)
		return 1
	}
	return 0
}

func newState(cfg *config.Config) (*divider.State, error) {
	dc, err := cfg.DividerConfig()
	if err != nil {
		return nil, err
	}
	return divider.New(dc)
}
