package gaddag

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLoadDictionarySkipsMalformedLines(t *testing.T) {
	is := is.New(t)
	data := "\ufeffCAT\n  DOG  \nbird\nX\nFOO BAR\nÉTÉ\n\nCATS\r\nCAT\n"
	d, err := LoadDictionary("tiny", strings.NewReader(data))
	is.NoErr(err)
	is.Equal(d.Name(), "tiny")
	is.Equal(d.WordCount(), 3)
	is.Equal(d.Words(), []string{"CAT", "CATS", "DOG"})
	is.True(d.IsValidWord("CAT"))
	is.True(d.IsValidWord("DOG"))
	is.True(!d.IsValidWord("BIRD"))
	is.True(!d.IsValidWord("X"))
	is.True(d.Gaddag().Contains("CATS"))
	is.True(!d.Gaddag().Contains("X"))
}

func TestChecksumIgnoresOrder(t *testing.T) {
	is := is.New(t)
	d1 := NewDictionary("a", []string{"CAT", "DOG", "EMU"})
	d2 := NewDictionary("b", []string{"EMU", "CAT", "DOG", "CAT"})
	d3 := NewDictionary("c", []string{"CAT", "DOG"})
	is.Equal(d1.Checksum(), d2.Checksum())
	is.True(d1.Checksum() != d3.Checksum())
}

func TestDictionaryCache(t *testing.T) {
	is := is.New(t)
	ClearCache()
	defer ClearCache()

	path := filepath.Join(t.TempDir(), "mini.txt")
	is.NoErr(os.WriteFile(path, []byte("ZA\nQI\nJO\n"), 0o644))

	d1, err := GetDictionary(path)
	is.NoErr(err)
	is.Equal(d1.Name(), "mini")
	is.Equal(d1.WordCount(), 3)

	d2, err := GetDictionary(path)
	is.NoErr(err)
	is.True(d1 == d2)

	_, err = GetDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	is.True(err != nil)
}
