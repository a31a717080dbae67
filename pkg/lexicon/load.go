package lexicon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// corpusRecord is the on-disk shape of one corpus line: a key, a word,
// and a list of dictionary-style meanings. Additional fields are ignored.
type corpusRecord struct {
	Key      string `json:"key"`
	Word     string `json:"word"`
	Meanings []struct {
		Def string `json:"def"`
	} `json:"meanings"`
}

// LoadCorpusDir streams every newline-delimited JSON corpus file under
// dir into a new Lexicon. A malformed line is a CorpusEntryInvalid
// condition: it is logged at Warn and skipped, never aborting the load.
func LoadCorpusDir(dir string, log *logrus.Logger) (*Lexicon, error) {
	if log == nil {
		log = logrus.New()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read corpus dir: %w", err)
	}
	lex := New()
	loaded := 0
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		path := filepath.Join(dir, de.Name())
		n, err := loadCorpusFile(path, lex, log)
		if err != nil {
			return nil, fmt.Errorf("lexicon: load %s: %w", path, err)
		}
		loaded += n
	}
	log.WithField("component", "lexicon").WithField("entries", loaded).Info("corpus loaded")
	return lex, nil
}

func loadCorpusFile(path string, lex *Lexicon, log *logrus.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	loaded := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec corpusRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			log.WithFields(logrus.Fields{
				"component": "lexicon",
				"file":      path,
				"line":      lineNo,
			}).Warn("corpus entry invalid: malformed JSON")
			continue
		}
		defs := make([]string, 0, len(rec.Meanings))
		for _, m := range rec.Meanings {
			if m.Def != "" {
				defs = append(defs, m.Def)
			}
		}
		entry, ok := NewEntry(rec.Word, defs)
		if !ok {
			log.WithFields(logrus.Fields{
				"component": "lexicon",
				"file":      path,
				"line":      lineNo,
				"word":      rec.Word,
			}).Warn("corpus entry invalid: word fails normalization")
			continue
		}
		lex.Add(entry)
		loaded++
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return loaded, err
	}
	return loaded, nil
}
