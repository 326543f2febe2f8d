package tilemapping

import "strings"

// LetterCounts is a fixed-size per-letter tally of tiles, with the blank
// at BlankIdx. Search routines take and put letters back in strict pairs
// around each recursive step.
type LetterCounts [MaxAlphabetSize]uint8

// CountsFromTiles tallies the tiles. Any blank, designated or not, counts
// as a blank.
func CountsFromTiles(tiles []Tile) LetterCounts {
	var lc LetterCounts
	for _, t := range tiles {
		if idx := t.Index(); idx >= 0 {
			lc[idx]++
		}
	}
	return lc
}

// CountsFromString tallies a string of letters; '?' is a blank and other
// characters are ignored.
func CountsFromString(s string) LetterCounts {
	var lc LetterCounts
	for _, r := range strings.ToUpper(s) {
		if idx := LetterIndex(r); idx >= 0 {
			lc[idx]++
		}
	}
	return lc
}

func (lc *LetterCounts) Has(idx int) bool {
	return lc[idx] > 0
}

// Take should only be called if Has(idx) is true.
func (lc *LetterCounts) Take(idx int) {
	lc[idx]--
}

func (lc *LetterCounts) Put(idx int) {
	lc[idx]++
}

// Total is the number of tiles tallied.
func (lc *LetterCounts) Total() int {
	t := 0
	for _, c := range lc {
		t += int(c)
	}
	return t
}

// Blanks is the number of blanks tallied.
func (lc *LetterCounts) Blanks() int {
	return int(lc[BlankIdx])
}

// TakeLetter consumes one tile able to stand for the letter, preferring a
// real tile over a blank. It reports which index was used, or -1 if
// neither is available.
func (lc *LetterCounts) TakeLetter(letter rune) int {
	idx := LetterIndex(letter)
	if idx >= 0 && idx < NumLetters && lc[idx] > 0 {
		lc[idx]--
		return idx
	}
	if lc[BlankIdx] > 0 {
		lc[BlankIdx]--
		return BlankIdx
	}
	return -1
}

// String renders the tally alphabetically, blanks last.
func (lc LetterCounts) String() string {
	var sb strings.Builder
	for idx, c := range lc {
		for i := uint8(0); i < c; i++ {
			sb.WriteRune(IndexLetter(idx))
		}
	}
	return sb.String()
}
