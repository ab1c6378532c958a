// Package lex provides the line-oriented tokenizer shared by the
// parsers in the formats package (spec.md §6's "common parser
// rules"): comment skipping, whitespace-separated numeric tokens, and
// locale-independent decimal parsing. It is not a general-purpose
// lexer — each on-disk format still walks its own header/body
// structure — just the low-level line and token plumbing every format
// parser would otherwise duplicate.
package lex
