package server

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/letterlab/unscramble/internal/logger"
	"github.com/letterlab/unscramble/pkg/config"
	"github.com/letterlab/unscramble/pkg/unscramble"
)

// Server handles the IPC for unscramble requests
type Server struct {
	engine     *unscramble.Engine
	config     *config.Config
	dictSource string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
	log        *log.Logger
}

// NewServer creates an IPC server using stdin/stdout
func NewServer(engine *unscramble.Engine, cfg *config.Config, dictSource string) *Server {
	return NewServerIO(engine, cfg, dictSource, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over explicit streams, used by tests and
// embedding callers.
func NewServerIO(engine *unscramble.Engine, cfg *config.Config, dictSource string, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:     engine,
		config:     cfg,
		dictSource: dictSource,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
		log:        logger.Default("ipc"),
	}
}

// Start begins the request loop. Returns nil on clean EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting IPC server")

	s.sendResponse(ReadyResponse{Status: "ready"})

	for {
		var request UnscrambleRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client disconnected (EOF)")
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a decoded request
func (s *Server) handleRequest(request UnscrambleRequest) {
	switch request.Action {
	case "":
		s.handleUnscramble(request)
	case "get_info":
		s.sendResponse(DictionaryResponse{
			ID:        request.ID,
			WordCount: s.engine.Dictionary().Len(),
			Source:    s.dictSource,
		})
	default:
		s.sendError(request.ID, "Unknown action: "+request.Action, 400)
	}
}

// handleUnscramble builds an engine request from the configured defaults,
// applies the message overrides and runs the engine.
func (s *Server) handleUnscramble(request UnscrambleRequest) {
	if len(request.Text) > s.config.Server.MaxTextLength {
		s.sendError(request.ID, "Text exceeds maximum length", 400)
		s.log.Debugf("Rejected oversized request (%d bytes)", len(request.Text))
		return
	}

	req := s.config.Request(request.Text)
	if request.Mode != "" {
		mode, err := unscramble.ParseMode(request.Mode)
		if err != nil {
			s.sendError(request.ID, err.Error(), 400)
			return
		}
		req.Mode = mode
	}
	if request.MinWordLength > 0 {
		req.MinWordLength = request.MinWordLength
	}
	if request.MaxSuggestions > 0 {
		req.MaxSuggestions = request.MaxSuggestions
	}
	if limit := s.config.Server.MaxSuggestionsCap; limit > 0 && req.MaxSuggestions > limit {
		req.MaxSuggestions = limit
	}
	if request.SuggestAlternatives != nil {
		req.SuggestAlternatives = *request.SuggestAlternatives
	}
	if request.SortByLength != nil {
		req.SortByLength = *request.SortByLength
	}
	if request.PreserveSpaces != nil {
		req.PreserveSpaces = *request.PreserveSpaces
	}
	if request.PreservePunctuation != nil {
		req.PreservePunctuation = *request.PreservePunctuation
	}

	result, err := s.engine.Run(req)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		return
	}

	s.sendResponse(UnscrambleResponse{
		ID:          request.ID,
		Text:        result.UnscrambledText,
		Suggestions: result.Suggestions,
		Mode:        string(result.Mode),
		WordsFound:  result.WordsFound,
		Confidence:  result.Confidence,
		TimeTaken:   result.ProcessingTimeMs,
	})
}

// sendResponse encodes a response onto the output stream
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:     id,
		Error:  message,
		Status: code,
	})
}
