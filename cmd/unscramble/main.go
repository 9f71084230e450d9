/*
Package main implements the unscramble server and CLI application.

Unscramble reconstructs probable original words from scrambled text using
dictionary matching, multiset letter analysis and pattern heuristics. It
can operate as a MessagePack IPC server for integration with editors and
UI frontends, or as a CLI application for testing and debugging.

Four modes are available: word (per-token), anagram (whole-input letter
pool), smart (boundary letters kept fixed) and pattern (whole-input
transform heuristics). The engine is pure and synchronous; debouncing and
rendering are caller concerns.

# Usage

Start the IPC server with the embedded dictionary:

	unscramble

Use a custom word list and enable debug logging:

	unscramble -dict /path/to/words.txt -d

Run in CLI mode for interactive testing:

	unscramble -c -mode smart -limit 10

Export the loaded dictionary as a binary file for faster startup:

	unscramble -dict words.txt -export words.bin

# Configuration

Runtime configuration is managed through a TOML file that provides the
engine defaults applied when a request leaves an option unset:

	[engine]
	default_mode = "word"
	min_word_length = 3
	max_suggestions = 5
	sort_by_length = true

	[dict]
	path = ""
	max_words = 0

The config file is automatically created with defaults if it doesn't
exist. A broken file is parsed section by section so valid parts survive.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with millisecond timing in responses.

Send an unscramble request:

	{"id": "req1", "t": "ctas no the amt", "m": "word"}

Receive the reconstruction with scoring:

	{"id": "req1", "u": "cats on the mat", "c": 4, "conf": 100, "ms": 0}

# Dictionary

The binary ships with an embedded frequency-ordered word list; -dict
points at a plain-text (.txt) or msgpack binary (.bin) replacement. Scan
order is insertion order, which decides which candidate wins when several
words fit the same letters.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/letterlab/unscramble/internal/cli"
	"github.com/letterlab/unscramble/internal/utils"
	"github.com/letterlab/unscramble/pkg/config"
	"github.com/letterlab/unscramble/pkg/dictionary"
	"github.com/letterlab/unscramble/pkg/server"
	"github.com/letterlab/unscramble/pkg/unscramble"
)

const (
	Version = "1.2.0"
	AppName = "unscramble"
	gh      = "https://github.com/letterlab/unscramble"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and engine together and hands control to
// either the CLI handler or the IPC server. No engine logic lives here.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	dictPath := flag.String("dict", "", "Dictionary file (.txt or .bin), empty for the embedded list")
	exportPath := flag.String("export", "", "Write the loaded dictionary as a msgpack binary and exit")
	modeFlag := flag.String("mode", "", "Unscramble mode: word, anagram, smart, pattern")
	minLen := flag.Int("min", 0, "Minimum word length for matches")
	limit := flag.Int("limit", 0, "Maximum number of suggestions")
	noSort := flag.Bool("no-sort", false, "Keep dictionary order instead of sorting matches by length")
	noFilter := flag.Bool("no-filter", false, "Disable CLI input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath := config.LoadConfigWithPriority(*configPath)
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	applyFlagOverrides(appConfig, *modeFlag, *minLen, *limit, *noSort)

	dict, dictSource, err := loadDictionary(appConfig, *dictPath)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debugf("Dictionary ready: %d words from %s", dict.Len(), dictSource)

	if *exportPath != "" {
		if err := dictionary.SaveBinary(dict, *exportPath); err != nil {
			log.Fatalf("Failed to export dictionary: %v", err)
		}
		log.Infof("Exported %d words to %s", dict.Len(), *exportPath)
		return
	}

	engine := unscramble.New(dict)

	// CLI is mainly used for testing and dbg purposes. Any new mode
	// behavior should be tried here before touching the server surface.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(engine, appConfig, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	srv := server.NewServer(engine, appConfig, dictSource)
	showStartupInfo(dictSource, dict.Len())
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// applyFlagOverrides lets flags win over the config file for this run.
func applyFlagOverrides(cfg *config.Config, mode string, minLen, limit int, noSort bool) {
	if mode != "" {
		if _, err := unscramble.ParseMode(mode); err != nil {
			log.Fatalf("Invalid -mode: %v", err)
		}
		cfg.Engine.DefaultMode = mode
	}
	if minLen > 0 {
		cfg.Engine.MinWordLength = minLen
	}
	if limit > 0 {
		cfg.Engine.MaxSuggestions = limit
	}
	if noSort {
		cfg.Engine.SortByLength = false
	}
}

// loadDictionary picks the word source: -dict flag, config path, or the
// embedded default list.
func loadDictionary(cfg *config.Config, flagPath string) (*dictionary.Store, string, error) {
	path := flagPath
	if path == "" {
		path = cfg.Dict.Path
	}
	if path == "" {
		return dictionary.Default(), "embedded", nil
	}
	resolved := utils.ResolveDataFile(path)
	dict, err := dictionary.LoadFile(resolved, cfg.Dict.MaxWords)
	if err != nil {
		return nil, "", err
	}
	return dict, resolved, nil
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Unscramble ] Puts scrambled words back together!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictSource string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" Unscramble ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary: ( %s ) %d words", dictSource, wordCount)
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
