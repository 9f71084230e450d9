// Package cli handles cmd line input for testing the unscramble modes in real-time
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/letterlab/unscramble/internal/utils"
	"github.com/letterlab/unscramble/pkg/config"
	"github.com/letterlab/unscramble/pkg/unscramble"
)

// InputHandler processes user input from stdin and prints engine results.
// Mode and matching options come from the loaded config plus any flag
// overrides applied by main before construction.
type InputHandler struct {
	engine        unscramble.IUnscrambler
	cfg           *config.Config
	maxTextLength int
	noFilter      bool
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(engine unscramble.IUnscrambler, cfg *config.Config, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:        engine,
		cfg:           cfg,
		maxTextLength: cfg.CLI.MaxTextLength,
		noFilter:      noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// The loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Printf("Unscramble CLI -- mode: %s", h.cfg.Engine.DefaultMode)
	reader := bufio.NewReader(os.Stdin)
	log.Print("type scrambled text and press Enter (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput runs a single line through the engine and prints the
// reconstruction, confidence and the suggestion pool.
func (h *InputHandler) handleInput(text string) {
	if len(text) > h.maxTextLength {
		log.Errorf("Input too long: %d chars (max %d)", len(text), h.maxTextLength)
		return
	}

	if !h.noFilter {
		if !utils.IsValidInput(text) {
			log.Warnf("Nothing to unscramble in: '%s'", text)
			return
		}
	} else {
		log.Debug("Input filtering disabled - passing raw input to the engine")
	}

	result, err := h.engine.Run(h.cfg.Request(text))
	if err != nil {
		log.Errorf("Request rejected: %v", err)
		return
	}

	log.Debugf("Took [ %dms ] for input '%s'", result.ProcessingTimeMs, text)

	if result.Confidence == 0 {
		log.Warnf("No matches found, returning input unchanged")
	}

	clText := fmt.Sprintf("\033[38;5;75m%s\033[0m", result.UnscrambledText)
	log.Printf("=> %s", clText)
	log.Printf("   words: %d  confidence: %d%%", result.WordsFound, result.Confidence)
	for i, s := range result.Suggestions {
		log.Printf("%2d. %s", i+1, s)
	}
}
