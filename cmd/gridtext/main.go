// Command gridtext edits a delimiter-separated text file in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridtext"
	"github.com/iw2rmb/gridtext/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gridtext:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet(gridtext.Name, flag.ContinueOnError)
	cfgPath := fs.String("config", config.DefaultPath(), "path to config.toml")
	delim := fs.String("delim", "", "field delimiter: a character or comma, tab, semicolon, pipe")
	raw := fs.Bool("raw", false, "render rows without column alignment")
	readOnly := fs.Bool("read-only", false, "open the file read-only")
	saveConfig := fs.Bool("save-config", false, "write the effective settings to -config and exit")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Println(gridtext.VersionString())
		return nil
	}

	if logPath := os.Getenv("GRIDTEXT_LOG"); logPath != "" {
		f, err := tea.LogToFile(logPath, gridtext.Name)
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *delim != "" {
		cfg.Delimiter = *delim
	}
	if *raw {
		cfg.RawLayout = true
	}
	if *readOnly {
		cfg.ReadOnly = true
	}
	if *saveConfig {
		if _, err := cfg.DelimiterRune(); err != nil {
			return err
		}
		if err := cfg.Save(*cfgPath); err != nil {
			return err
		}
		fmt.Println("wrote", *cfgPath)
		return nil
	}

	path := fs.Arg(0)
	text, err := readDocument(path)
	if err != nil {
		return err
	}

	ecfg, err := cfg.Editor(text)
	if err != nil {
		return err
	}
	ecfg.Clipboard = systemClipboard{}
	log.Printf("Gridtext: open %q delimiter=%q", path, ecfg.Delimiter)

	p := tea.NewProgram(newApp(path, ecfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// readDocument returns the file contents, or "" for a new or unnamed file.
func readDocument(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
