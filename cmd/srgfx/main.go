// Command srgfx edits the Honkai: Star Rail graphics settings stored in the
// per-user registry.
//
// Usage:
//
//	./srgfx [-lang ko] [-store-dir dir] [-dump] [-debug] [-log file]
//
// Without -lang a language picker is shown first. On systems without a
// registry the settings live under the XDG config directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/pretty"
	"golang.org/x/term"

	"github.com/stlalpha/srgfx/internal/gfxeditor"
	"github.com/stlalpha/srgfx/internal/l10n"
	"github.com/stlalpha/srgfx/internal/logging"
	"github.com/stlalpha/srgfx/internal/regstore"
	"github.com/stlalpha/srgfx/internal/settings"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	lang     string
	storeDir string
	dump     bool
}

// realMain runs the command and returns the exit code. The debug log is
// closed before it returns.
func realMain(args []string, stdout *os.File, stderr io.Writer) int {
	fs := flag.NewFlagSet("srgfx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.lang, "lang", "", "UI language: en, ko or ja (skips the picker)")
	fs.StringVar(&opts.storeDir, "store-dir", "", "Use a file store rooted at this directory instead of the registry")
	fs.BoolVar(&opts.dump, "dump", false, "Print the current settings as JSON and exit")
	debug := fs.Bool("debug", false, "Enable debug logging (also DEBUG=1)")
	logPath := fs.String("log", "srgfx-debug.log", "Debug log file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Logging
	if *debug || logging.EnvEnabled() {
		f, err := logging.Enable(*logPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot open log file: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		logging.Disable()
	}

	if err := run(opts, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		logging.Debug("exit: %v", err)
		return 1
	}
	return 0
}

func run(opts options, stdout *os.File, stderr io.Writer) error {
	edit := gfxeditor.Options{Lang: l10n.FromEnv()}
	if opts.lang != "" {
		lang, ok := l10n.Match(opts.lang)
		if !ok {
			return fmt.Errorf("unsupported language %q", opts.lang)
		}
		edit.Lang = lang
		edit.SkipPicker = true
	}

	store, err := openStore(opts.storeDir)
	if err != nil {
		return err
	}
	adapter := settings.NewAdapter(store)

	if opts.dump {
		return dumpRecord(adapter, stdout, stderr)
	}

	if !term.IsTerminal(int(stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal (use -dump for non-interactive output)")
	}

	p := tea.NewProgram(gfxeditor.New(adapter, edit), tea.WithAltScreen(), tea.WithOutput(stdout))
	_, err = p.Run()
	return err
}

func openStore(dir string) (regstore.Store, error) {
	if dir != "" {
		logging.Debug("store: file store at %s", dir)
		return regstore.NewFile(dir), nil
	}
	store, err := regstore.Default()
	if err != nil {
		return nil, fmt.Errorf("opening settings store: %w", err)
	}
	return store, nil
}

func dumpRecord(adapter *settings.Adapter, stdout, stderr io.Writer) error {
	rec, existed := adapter.Load()
	if !existed {
		fmt.Fprintln(stderr, "No stored settings; showing defaults.")
	}
	text, err := settings.Encode(rec, nil)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if _, err := stdout.Write(pretty.Pretty(text)); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
