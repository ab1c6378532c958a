package lex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner walks a text-format pattern file one non-comment, non-blank
// line at a time, tracking a 1-based line number for error messages.
type Scanner struct {
	sc          *bufio.Scanner
	line        string
	lineNo      int
	commentCuts []string
}

// New wraps r in a Scanner. commentPrefixes lists the strings that
// mark the rest of a line as a comment (e.g. "//", "#"); a line is
// dropped entirely once a comment prefix is stripped and nothing but
// whitespace remains.
func New(r io.Reader, commentPrefixes ...string) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r), commentCuts: commentPrefixes}
}

// Next advances to the next non-blank, non-comment-only line, reports
// false at EOF.
func (s *Scanner) Next() bool {
	for s.sc.Scan() {
		s.lineNo++
		line := s.stripComment(s.sc.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.line = line
		return true
	}
	return false
}

func (s *Scanner) stripComment(line string) string {
	cut := len(line)
	for _, p := range s.commentCuts {
		if i := strings.Index(line, p); i >= 0 && i < cut {
			cut = i
		}
	}
	return line[:cut]
}

// Err returns the first non-EOF error the underlying reader produced.
func (s *Scanner) Err() error { return s.sc.Err() }

// Line returns the current (already comment-stripped, trimmed) line.
func (s *Scanner) Line() string { return s.line }

// LineNo returns the 1-based source line number of the current line.
func (s *Scanner) LineNo() int { return s.lineNo }

// Fields splits the current line on whitespace.
func (s *Scanner) Fields() []string { return strings.Fields(s.line) }

// Floats splits the current line on whitespace and parses every field
// as a float64. An error names the offending field and line number.
func (s *Scanner) Floats() ([]float64, error) {
	fields := s.Fields()
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: field %d %q is not numeric: %w", s.lineNo, i, f, err)
		}
		out[i] = v
	}
	return out, nil
}

// ExpectFloats reads the next non-blank line and parses it as exactly
// n whitespace-separated floats.
func (s *Scanner) ExpectFloats(n int) ([]float64, error) {
	if !s.Next() {
		if err := s.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected end of file, wanted %d numeric fields", n)
	}
	vals, err := s.Floats()
	if err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, fmt.Errorf("line %d: got %d fields, want %d", s.lineNo, len(vals), n)
	}
	return vals, nil
}
