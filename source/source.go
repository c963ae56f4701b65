// Package source defines immutable source text and positions in it.
package source

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Source contains named text. Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    string
	lineStarts []int
}

// New creates new Source.
func New(name, content string) *Source {
	lineCnt := strings.Count(content, "\n") + 1
	s := &Source{name: name, content: content, lineStarts: make([]int, lineCnt)}
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

// Name returns source name, may be empty.
func (s *Source) Name() string {
	return s.name
}

// Content returns source text.
func (s *Source) Content() string {
	return s.content
}

// Len returns text length in bytes.
func (s *Source) Len() int {
	return len(s.content)
}

// Rest returns the part of text starting at pos or empty string if pos is out of bounds.
func (s *Source) Rest(pos int) string {
	if pos < 0 || pos >= len(s.content) {
		return ""
	}
	return s.content[pos:]
}

// RuneAt decodes the rune starting at pos.
// Returns utf8.RuneError and 0 size if pos is out of bounds.
func (s *Source) RuneAt(pos int) (r rune, size int) {
	if pos < 0 || pos >= len(s.content) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.content[pos:])
}

// HasPrefixAt reports whether text at pos starts with prefix.
// If fold is true comparison uses Unicode simple case folding.
// Returns the number of bytes the prefix occupies in source text or -1 if it does not match.
func (s *Source) HasPrefixAt(pos int, prefix string, fold bool) int {
	if pos < 0 || pos > len(s.content) {
		return -1
	}

	rest := s.content[pos:]
	if !fold {
		if strings.HasPrefix(rest, prefix) {
			return len(prefix)
		}
		return -1
	}

	size := 0
	for _, pr := range prefix {
		r, l := utf8.DecodeRuneInString(rest[size:])
		if l == 0 || !equalFold(r, pr) {
			return -1
		}
		size += l
	}
	return size
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// LineCol converts byte offset to line and column numbers, both starting from 1.
// Column is counted in runes. Offsets out of bounds are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(s.content[lineStart:pos]) + 1
}

func (s *Source) findLineIndex(pos int) int {
	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	for leftIndex < rightIndex {
		index := (leftIndex + rightIndex + 1) >> 1
		if s.lineStarts[index] <= pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
		}
	}
	return leftIndex
}

// Pos is a position in source text. Pos implements pastdate.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates Pos for byte offset pos.
func NewPos(s *Source, pos int) Pos {
	res := Pos{src: s, pos: pos}
	if s != nil {
		res.line, res.col = s.LineCol(pos)
	}
	return res
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
