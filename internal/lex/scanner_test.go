package lex

import (
	"strings"
	"testing"
)

func TestScannerSkipsCommentsAndBlanks(t *testing.T) {
	src := "// header\n\n1.0 2.0\n# trailing comment\n3.0 4.0 // inline\n"
	s := New(strings.NewReader(src), "//", "#")

	var got [][]float64
	for s.Next() {
		vals, err := s.Floats()
		if err != nil {
			t.Fatalf("Floats: %v", err)
		}
		got = append(got, vals)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d data lines, want 2: %v", len(got), got)
	}
	if got[0][0] != 1.0 || got[0][1] != 2.0 {
		t.Fatalf("line 1 = %v, want [1 2]", got[0])
	}
	if got[1][0] != 3.0 || got[1][1] != 4.0 {
		t.Fatalf("line 2 = %v, want [3 4]", got[1])
	}
}

func TestScannerExpectFloatsWrongCount(t *testing.T) {
	s := New(strings.NewReader("1.0 2.0 3.0\n"), "//")
	if _, err := s.ExpectFloats(2); err == nil {
		t.Fatal("expected an error for mismatched field count")
	}
}

func TestScannerNonNumericField(t *testing.T) {
	s := New(strings.NewReader("1.0 abc\n"), "//")
	s.Next()
	if _, err := s.Floats(); err == nil {
		t.Fatal("expected an error for non-numeric field")
	}
}

func TestScannerLineNo(t *testing.T) {
	s := New(strings.NewReader("// c\n1 2\n\n3 4\n"), "//")
	s.Next()
	if s.LineNo() != 2 {
		t.Fatalf("LineNo = %d, want 2", s.LineNo())
	}
	s.Next()
	if s.LineNo() != 4 {
		t.Fatalf("LineNo = %d, want 4", s.LineNo())
	}
}
