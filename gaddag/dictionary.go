package gaddag

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var wordLineRe = regexp.MustCompile(`^[A-Z]+$`)

// A Dictionary is a GADDAG plus a flat word set for constant-time lookups.
// It is immutable once built and safe to share between goroutines.
type Dictionary struct {
	name     string
	gaddag   *Gaddag
	words    map[string]struct{}
	checksum uint64
}

// NewDictionary builds a dictionary from a word list. Entries that are not
// words of at least MinWordLength letters A-Z are dropped.
func NewDictionary(name string, words []string) *Dictionary {
	d := &Dictionary{
		name:   name,
		gaddag: NewGaddag(),
		words:  make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		if !isWord(w) {
			continue
		}
		if _, ok := d.words[w]; ok {
			continue
		}
		d.words[w] = struct{}{}
		d.gaddag.Insert(w)
	}
	d.checksum = xxhash.Sum64String(strings.Join(d.Words(), "\n"))
	return d
}

// LoadDictionary reads a newline-delimited list of uppercase words. A
// leading byte order mark is stripped and surrounding whitespace trimmed;
// any other malformed line is skipped.
func LoadDictionary(name string, r io.Reader) (*Dictionary, error) {
	tr := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
	scanner := bufio.NewScanner(tr)
	words := []string{}
	skipped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !wordLineRe.MatchString(line) || len(line) < MinWordLength {
			skipped++
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Debug().Str("dictionary", name).Int("skipped", skipped).Msg("skipped-malformed-lines")
	}
	d := NewDictionary(name, words)
	log.Info().Str("dictionary", name).Int("words", d.WordCount()).
		Int("nodes", d.gaddag.NumNodes()).
		Uint64("checksum", d.checksum).Msg("loaded-dictionary")
	return d, nil
}

// LoadDictionaryFile loads a word list from disk. The dictionary is named
// after the file, without its extension.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return LoadDictionary(name, f)
}

func (d *Dictionary) Name() string {
	return d.name
}

func (d *Dictionary) IsValidWord(word string) bool {
	_, ok := d.words[word]
	return ok
}

func (d *Dictionary) WordCount() int {
	return len(d.words)
}

// Checksum is a hash of the sorted word list. Two dictionaries with the
// same words have the same checksum.
func (d *Dictionary) Checksum() uint64 {
	return d.checksum
}

// Words returns the word list, sorted.
func (d *Dictionary) Words() []string {
	words := lo.Keys(d.words)
	sort.Strings(words)
	return words
}

func (d *Dictionary) Gaddag() *Gaddag {
	return d.gaddag
}
