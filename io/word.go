package io

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// WordReader splits a byte stream into whitespace separated words of any
// length, counting source lines as it goes.
type WordReader struct {
	reader *bufio.Reader
	lineNo int
}

// NewWordReader returns a WordReader positioned at line 1 of input.
func NewWordReader(input io.Reader) *WordReader {
	return &WordReader{
		reader: bufio.NewReader(input),
		lineNo: 1,
	}
}

// LineNo returns the current source line.
func (wr *WordReader) LineNo() int {
	return wr.lineNo
}

// Next returns the next word and the line it starts on.
// Returns io.EOF once the input holds no more words.
func (wr *WordReader) Next() (word string, lineNo int, err error) {
	var text strings.Builder

	for {
		var r rune
		r, _, err = wr.reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && text.Len() > 0 {
				err = nil
				word = text.String()
			}
			return
		}

		if r == '\n' {
			wr.lineNo++
		}

		if unicode.IsSpace(r) {
			if text.Len() > 0 {
				word = text.String()
				return
			}
			continue
		}

		if text.Len() == 0 {
			lineNo = wr.lineNo
		}
		text.WriteRune(r)
	}
}
