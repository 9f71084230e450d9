package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

//go:embed words.txt
var embeddedWords string

// binaryVersion is bumped whenever the msgpack layout changes.
const binaryVersion = 1

// wordFile is the on-disk layout of a binary dictionary.
type wordFile struct {
	Version int      `msgpack:"v"`
	Words   []string `msgpack:"w"`
}

// Default returns a Store built from the embedded word list.
func Default() *Store {
	return New(parseWordList(embeddedWords, 0))
}

// LoadFile builds a Store from a dictionary file. The format is picked by
// extension: .txt is one word per line (# starts a comment), .bin is the
// msgpack format written by SaveBinary. maxWords of 0 means no limit.
func LoadFile(path string, maxWords int) (*Store, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unsupported dictionary file %s: expected .txt or .bin", path)
	}
	if err := ValidateFileFormat(path, format); err != nil {
		return nil, err
	}

	switch format {
	case FormatText:
		return loadText(path, maxWords)
	case FormatBinary:
		return loadBinary(path, maxWords)
	default:
		return nil, fmt.Errorf("unsupported dictionary format: %v", format)
	}
}

func loadText(path string, maxWords int) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	words := parseWordList(string(data), maxWords)
	log.Debugf("Loaded %d words from text dictionary %s", len(words), path)
	return New(words), nil
}

func loadBinary(path string, maxWords int) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	var wf wordFile
	if err := msgpack.NewDecoder(bufio.NewReader(file)).Decode(&wf); err != nil {
		return nil, fmt.Errorf("failed to decode binary dictionary %s: %w", path, err)
	}
	if wf.Version != binaryVersion {
		return nil, fmt.Errorf("binary dictionary %s has version %d, want %d", path, wf.Version, binaryVersion)
	}
	words := wf.Words
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	log.Debugf("Loaded %d words from binary dictionary %s", len(words), path)
	return New(words), nil
}

// SaveBinary writes the store's word list as a msgpack binary dictionary.
// Insertion order is preserved so a round trip yields an identical Store.
func SaveBinary(s *Store, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dictionary %s: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	wf := wordFile{Version: binaryVersion, Words: s.Words()}
	if err := msgpack.NewEncoder(writer).Encode(&wf); err != nil {
		return fmt.Errorf("failed to encode binary dictionary %s: %w", path, err)
	}
	return writer.Flush()
}

// parseWordList splits raw word list text into words, skipping blank lines
// and # comments. maxWords of 0 means no limit.
func parseWordList(raw string, maxWords int) []string {
	var words []string
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
		if maxWords > 0 && len(words) >= maxWords {
			break
		}
	}
	return words
}
