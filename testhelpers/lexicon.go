// Package testhelpers has a small in-memory lexicon and tile helpers shared
// by the tests of the other packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lexiplay/scrabble/gaddag"
	"github.com/lexiplay/scrabble/tilemapping"
)

// TinyLexiconName is the name given to the test lexicon.
const TinyLexiconName = "TINY"

// TinyLexicon is every two-letter word the tests rely on plus a handful of
// longer ones.
var TinyLexicon = []string{
	"AA", "AB", "AD", "AE", "AG", "AH", "AI", "AL", "AM", "AN", "AR", "AS",
	"AT", "AW", "AX", "AY", "BA", "BE", "BI", "BO", "BY", "DA", "DE", "DO",
	"ED", "EF", "EH", "EL", "EM", "EN", "ER", "ES", "EX", "FA", "FE", "GO",
	"HA", "HE", "HI", "HM", "HO", "ID", "IF", "IN", "IS", "IT", "JO", "KA",
	"KI", "LA", "LI", "LO", "MA", "ME", "MI", "MO", "MU", "MY", "NA", "NE",
	"NO", "NU", "OD", "OE", "OF", "OH", "OI", "OM", "ON", "OP", "OR", "OS",
	"OW", "OX", "OY", "PA", "PE", "PI", "QI", "RE", "SH", "SI", "SO", "TA",
	"TI", "TO", "UH", "UM", "UN", "UP", "US", "UT", "WE", "WO", "XI", "XU",
	"YA", "YE", "YO", "ZA",

	"ACT", "ACTS", "ATE", "CAT", "CATS", "EAT", "EATS", "ETA", "SCAT",
	"SEAT", "TEA", "TEAS", "RATE", "TEAR", "STAR", "RATS", "ARTS", "TARS",
	"RETAIN", "RETAINS", "STAINER", "NASTIER", "RETINAS", "RETSINA",
	"ANTSIER", "STAIN", "SATIN", "TRAIN", "TRAINS", "QUIZ", "ZOO", "JOT",
	"JOTS", "DOG", "DOGS", "GOD", "HAT", "HATS", "THAT", "THE", "THEN",
	"HEN", "HENS", "TEN", "TENS", "NET", "NETS", "SET", "TIN", "TINS", "SIT",
	"ITS", "TIS",
}

// TinyDictionary builds a dictionary from TinyLexicon.
func TinyDictionary() *gaddag.Dictionary {
	return gaddag.NewDictionary(TinyLexiconName, TinyLexicon)
}

// WriteTinyLexicon writes TinyLexicon to dir and returns the file path.
func WriteTinyLexicon(dir string) (string, error) {
	path := filepath.Join(dir, TinyLexiconName+".txt")
	err := os.WriteFile(path, []byte(strings.Join(TinyLexicon, "\n")+"\n"), 0o644)
	return path, err
}

// Tiles converts a string to tiles in the English distribution, panicking
// on bad input. Lowercase letters are designated blanks.
func Tiles(s string) []tilemapping.Tile {
	tiles, err := tilemapping.ToTiles(s, tilemapping.EnglishLetterDistribution())
	if err != nil {
		panic(err)
	}
	return tiles
}
