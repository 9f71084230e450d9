/*
Package server implements msgpack IPC for the unscramble engine.

The server provides a minimal request/response interface over stdin and
stdout using binary msgpack encoding. It is meant to sit behind an editor
or UI process that debounces keystrokes and renders the result fields;
the engine itself stays a pure in-process function.

# IPC

Each message carries an ID so clients can correlate responses. An
unscramble request looks like:

	{"id": "req_001", "t": "ctas no the amt", "m": "word", "l": 5}

The server answers with the reconstructed text, the suggestion pool and
scoring info:

	{"id": "req_001", "u": "cats on the mat", "s": ["cast"], "c": 4, "conf": 100, "ms": 0}

Omitted option fields fall back to the server's configured engine
defaults. Malformed requests produce an error response with a status
code; they never terminate the loop:

	{"id": "req_001", "error": "unknown mode: \"speed\"", "status": 400}

A dictionary info request reports what is loaded:

	{"id": "dict_001", "action": "get_info"}
*/
package server

// UnscrambleRequest - a single engine invocation
type UnscrambleRequest struct {
	ID                  string `msgpack:"id"`
	Text                string `msgpack:"t"`
	Mode                string `msgpack:"m,omitempty"`
	MinWordLength       int    `msgpack:"min,omitempty"`
	MaxSuggestions      int    `msgpack:"l,omitempty"`
	SuggestAlternatives *bool  `msgpack:"alt,omitempty"`
	SortByLength        *bool  `msgpack:"sort,omitempty"`
	PreserveSpaces      *bool  `msgpack:"sp,omitempty"`
	PreservePunctuation *bool  `msgpack:"punct,omitempty"`
	Action              string `msgpack:"action,omitempty"` // "get_info" for dictionary stats
}

// UnscrambleResponse - engine result plus timing
type UnscrambleResponse struct {
	ID          string   `msgpack:"id"`
	Text        string   `msgpack:"u"`
	Suggestions []string `msgpack:"s,omitempty"`
	Mode        string   `msgpack:"m"`
	WordsFound  int      `msgpack:"c"`
	Confidence  int      `msgpack:"conf"`
	TimeTaken   int64    `msgpack:"ms"`
}

// DictionaryResponse - dictionary info for "get_info"
type DictionaryResponse struct {
	ID        string `msgpack:"id"`
	WordCount int    `msgpack:"words"`
	Source    string `msgpack:"source"`
}

// ErrorResponse represents a request-level failure
type ErrorResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Error  string `msgpack:"error"`
	Status int    `msgpack:"status"`
}

// ReadyResponse is sent once at startup so clients know the dictionary
// finished loading
type ReadyResponse struct {
	Status string `msgpack:"status"`
}
