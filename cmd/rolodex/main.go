package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hollis-dev/rolodex/internal/book"
	"github.com/hollis-dev/rolodex/internal/config"
	"github.com/hollis-dev/rolodex/internal/engine"
	"github.com/hollis-dev/rolodex/internal/storage"
	"github.com/hollis-dev/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	File    string           `arg:"" optional:"" help:"Storage file path (default: from config, else addressbook.txt)."`
	NoTUI   bool             `help:"Force the plain line-oriented session even on a TTY." default:"false"`
}

// Startup and shutdown messages. Per-command feedback lives in the engine;
// these cover storage setup and fatal I/O, which happen outside the session.
const (
	msgInvalidFile           = "The given file name [%s] is not a valid file name!"
	msgUsingDefaultFile      = "Using default storage file : %s"
	msgMissingStorageFile    = "Storage file missing: %s"
	msgStorageFileCreated    = "Created new empty storage file: %s"
	msgInvalidStorageContent = "Storage file has invalid content"
	msgErrorCreatingFile     = "Error: unable to create file: %s"
	msgErrorReadingFile      = "Unexpected error: unable to read from file: %s"
	msgErrorWritingFile      = "Unexpected error: unable to write to file: %s"
	msgGoodbye               = "Exiting Address Book... Good bye!"
)

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run wires storage, the owned state, the engine, and the session, then
// drives the session to completion. Fatal storage conditions are reported
// to out; the returned error covers only config problems.
func run(cli *CLI, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := cli.File
	if path == "" {
		path = cfg.Storage.Path
		tui.Show(out, fmt.Sprintf(msgUsingDefaultFile, path))
	}

	file, err := storage.NewFile(path)
	if err != nil {
		shutdown(out, fmt.Sprintf(msgInvalidFile, path))
		return nil
	}

	created, err := file.EnsureExists()
	if err != nil {
		shutdown(out, fmt.Sprintf(msgErrorCreatingFile, path))
		return nil
	}
	if created {
		tui.Show(out, fmt.Sprintf(msgMissingStorageFile, path))
		tui.Show(out, fmt.Sprintf(msgStorageFileCreated, path))
	}

	persons, err := file.Load()
	if err != nil {
		// Any single malformed line aborts the whole load; there is no
		// partial in-memory population.
		if errors.Is(err, storage.ErrInvalidContent) {
			shutdown(out, msgInvalidStorageContent)
		} else {
			shutdown(out, fmt.Sprintf(msgErrorReadingFile, path))
		}
		return nil
	}

	store := book.NewStore(file.Save)
	store.LoadAll(persons)

	// The initial listing snapshot covers the loaded persons, so
	// delete-by-index works before the first list/find.
	listing := book.NewListing()
	listing.Set(store.All())

	session := tui.NewSession(tui.Options{
		Input:      in,
		Output:     out,
		Executor:   engine.New(store, listing),
		Version:    versionLine(),
		ForcePlain: cli.NoTUI || cfg.UI.Plain,
	})

	if err := session.Run(); err != nil {
		// The model on disk may no longer match memory; never keep running.
		shutdown(out, fmt.Sprintf(msgErrorWritingFile, path))
	}
	return nil
}

// shutdown reports a fatal condition and the goodbye banner.
// The process exits with code 0 afterwards, as it does for a user exit.
func shutdown(out io.Writer, message string) {
	tui.Show(out, message, msgGoodbye, tui.Divider, tui.Divider)
}

func versionLine() string {
	return fmt.Sprintf("Rolodex Address Book - Version %s", version)
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Description("A single-user address book with a line-oriented command session."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	if err := run(&cli, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
