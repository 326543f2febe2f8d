// Package gaddag implements the GADDAG, a pretty cool data structure
// invented by Steven Gordon. Every word is stored once per split point as
// reverse(prefix) + SeparationToken + suffix, so a search can start from
// any letter of a word and grow it in both directions.
package gaddag

import (
	"sort"

	"github.com/lexiplay/scrabble/board"
	"github.com/lexiplay/scrabble/tilemapping"
)

// SeparationToken is the GADDAG separation token.
const SeparationToken = '^'

const (
	sepIdx   = tilemapping.NumLetters
	numEdges = tilemapping.NumLetters + 1
	// MinWordLength is the shortest word that gets indexed.
	MinWordLength = 2
)

type node struct {
	arcs     [numEdges]*node
	terminal bool
}

func edgeIndex(r rune) int {
	if r == SeparationToken {
		return sepIdx
	}
	if tilemapping.IsLetter(r) {
		return int(r - 'A')
	}
	return -1
}

func (n *node) next(r rune) *node {
	idx := edgeIndex(r)
	if idx < 0 {
		return nil
	}
	return n.arcs[idx]
}

// Gaddag is an in-memory GADDAG trie. The trie is acyclic, so searches
// need no cycle detection.
type Gaddag struct {
	root     *node
	numNodes int
	numWords int
}

func NewGaddag() *Gaddag {
	return &Gaddag{root: &node{}, numNodes: 1}
}

// NumNodes is the number of trie nodes allocated.
func (g *Gaddag) NumNodes() int {
	return g.numNodes
}

// NumWords is the number of distinct words inserted.
func (g *Gaddag) NumWords() int {
	return g.numWords
}

func reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

func isWord(word string) bool {
	if len(word) < MinWordLength {
		return false
	}
	for _, r := range word {
		if !tilemapping.IsLetter(r) {
			return false
		}
	}
	return true
}

// addPath inserts a path and marks its end terminal. It returns true if the
// path was not already terminal.
func (g *Gaddag) addPath(path string) bool {
	cur := g.root
	for _, r := range path {
		idx := edgeIndex(r)
		if cur.arcs[idx] == nil {
			cur.arcs[idx] = &node{}
			g.numNodes++
		}
		cur = cur.arcs[idx]
	}
	added := !cur.terminal
	cur.terminal = true
	return added
}

// Insert adds a word. Words shorter than MinWordLength, or containing
// anything but A-Z, are ignored.
func (g *Gaddag) Insert(word string) {
	if !isWord(word) {
		return
	}
	if g.addPath(string(SeparationToken) + word) {
		g.numWords++
	}
	for i := 1; i <= len(word); i++ {
		g.addPath(reverse(word[:i]) + string(SeparationToken) + word[i:])
	}
}

func (g *Gaddag) walk(path string) *node {
	cur := g.root
	for _, r := range path {
		cur = cur.next(r)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Contains returns whether the word was inserted.
func (g *Gaddag) Contains(word string) bool {
	if !isWord(word) {
		return false
	}
	n := g.walk(string(SeparationToken) + word)
	return n != nil && n.terminal
}

// HasInfix returns whether some word contains s as a contiguous substring.
// Move generation uses it to prune lines that cannot grow into a word.
func (g *Gaddag) HasInfix(s string) bool {
	for _, r := range s {
		if !tilemapping.IsLetter(r) {
			return false
		}
	}
	return g.walk(reverse(s)) != nil
}

type wordSet map[string]struct{}

func (ws wordSet) sorted() []string {
	words := make([]string, 0, len(ws))
	for w := range ws {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// WordsFrom finds every word that can be built around a single anchor
// letter using tiles from the rack. Before the separation edge letters are
// prepended (only if allowLeft); after it they are appended (only if
// allowRight). Blanks in the rack stand in for any letter. The rack is
// restored before returning.
func (g *Gaddag) WordsFrom(rack tilemapping.LetterCounts, anchor rune, allowLeft, allowRight bool) []string {
	start := g.root.next(anchor)
	found := wordSet{}
	if start == nil || anchor == SeparationToken {
		return nil
	}
	g.extendLeft(start, []rune{anchor}, &rack, allowLeft, allowRight, found)
	return found.sorted()
}

func (g *Gaddag) extendLeft(n *node, word []rune, rack *tilemapping.LetterCounts,
	allowLeft, allowRight bool, found wordSet) {

	if sep := n.arcs[sepIdx]; sep != nil {
		g.extendRight(sep, word, rack, allowRight, found)
	}
	if !allowLeft {
		return
	}
	for idx := 0; idx < tilemapping.NumLetters; idx++ {
		child := n.arcs[idx]
		if child == nil {
			continue
		}
		letter := tilemapping.IndexLetter(idx)
		used := rack.TakeLetter(letter)
		if used < 0 {
			continue
		}
		g.extendLeft(child, append([]rune{letter}, word...), rack, allowLeft, allowRight, found)
		rack.Put(used)
	}
}

func (g *Gaddag) extendRight(n *node, word []rune, rack *tilemapping.LetterCounts,
	allowRight bool, found wordSet) {

	if n.terminal && len(word) >= MinWordLength {
		found[string(word)] = struct{}{}
	}
	if !allowRight {
		return
	}
	for idx := 0; idx < tilemapping.NumLetters; idx++ {
		child := n.arcs[idx]
		if child == nil {
			continue
		}
		letter := tilemapping.IndexLetter(idx)
		used := rack.TakeLetter(letter)
		if used < 0 {
			continue
		}
		g.extendRight(child, append(word, letter), rack, allowRight, found)
		rack.Put(used)
	}
}

// WordsFromPartial completes a fixed fragment using only rack tiles. With
// isPrefix the fragment is the start of the word and letters are appended;
// otherwise it is the end of the word and letters are prepended. The
// fragment itself counts as a result if it is a word.
func (g *Gaddag) WordsFromPartial(partial string, rack tilemapping.LetterCounts, isPrefix bool) []string {
	found := wordSet{}
	if isPrefix {
		n := g.walk(reverse(partial) + string(SeparationToken))
		if n == nil {
			return nil
		}
		g.extendRight(n, []rune(partial), &rack, true, found)
		return found.sorted()
	}
	n := g.walk(reverse(partial))
	if n == nil {
		return nil
	}
	g.prependAll(n, []rune(partial), &rack, found)
	return found.sorted()
}

func (g *Gaddag) prependAll(n *node, word []rune, rack *tilemapping.LetterCounts, found wordSet) {
	if sep := n.arcs[sepIdx]; sep != nil && sep.terminal && len(word) >= MinWordLength {
		found[string(word)] = struct{}{}
	}
	for idx := 0; idx < tilemapping.NumLetters; idx++ {
		child := n.arcs[idx]
		if child == nil {
			continue
		}
		letter := tilemapping.IndexLetter(idx)
		used := rack.TakeLetter(letter)
		if used < 0 {
			continue
		}
		g.prependAll(child, append([]rune{letter}, word...), rack, found)
		rack.Put(used)
	}
}

// Placement is a word that a single rack tile would complete on the board.
type Placement struct {
	Word      string
	Start     board.Position
	Direction board.Direction
	// Position of the square the rack tile goes on.
	Square board.Position
	Letter rune
}

// FindValidWordsAt tries every letter the rack can supply on the empty
// square (row, col), joined to the tiles already on the board before and
// after it along dir. It returns each resulting dictionary word with its
// start position. A blank tries every letter.
func (g *Gaddag) FindValidWordsAt(b *board.GameBoard, row, col int, rack tilemapping.LetterCounts,
	dir board.Direction) []Placement {

	if !b.PosExists(row, col) || b.HasTile(row, col) {
		return nil
	}
	pos := board.Position{Row: row, Col: col}
	before := b.WordAt(pos.Step(dir, -1).Row, pos.Step(dir, -1).Col, dir)
	after := b.WordAt(pos.Step(dir, 1).Row, pos.Step(dir, 1).Col, dir)
	start := pos
	if before.Len() > 0 {
		start = before.Start
	}
	prefix, suffix := before.String(), after.String()

	placements := []Placement{}
	for idx := 0; idx < tilemapping.NumLetters; idx++ {
		if !rack.Has(idx) && !rack.Has(tilemapping.BlankIdx) {
			continue
		}
		letter := tilemapping.IndexLetter(idx)
		word := prefix + string(letter) + suffix
		if !g.Contains(word) {
			continue
		}
		placements = append(placements, Placement{
			Word:      word,
			Start:     start,
			Direction: dir,
			Square:    pos,
			Letter:    letter,
		})
	}
	return placements
}
