package console

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
)

// maxTokenSize bounds a single token only by memory, like stream extraction.
const maxTokenSize = math.MaxInt

// tokenReader yields whitespace-delimited tokens, one at a time.
// Each read runs on a helper goroutine so a blocked read can be abandoned
// when the context is cancelled; the scanner is never touched by two
// goroutines at once.
type tokenReader struct {
	sc      *bufio.Scanner
	results chan scanResult
	pending bool
}

type scanResult struct {
	tok string
	err error
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc, results: make(chan scanResult, 1)}
}

// next returns the next token, io.EOF once input is exhausted, or ctx's
// error if it is cancelled first.
func (t *tokenReader) next(ctx context.Context) (string, error) {
	if !t.pending {
		t.pending = true
		go t.scan()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-t.results:
		t.pending = false
		return r.tok, r.err
	}
}

func (t *tokenReader) scan() {
	if t.sc.Scan() {
		t.results <- scanResult{tok: t.sc.Text()}
		return
	}
	err := t.sc.Err()
	if err == nil {
		err = io.EOF
	}
	t.results <- scanResult{err: err}
}

// parseChoice returns the menu choice, or 0 when tok is not an integer.
func parseChoice(tok string) int {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0
	}
	return n
}

// parseAmount returns NaN for anything that is not a finite number.
// NaN fails every amount check downstream, so malformed input is reported
// the same way as an invalid amount.
func parseAmount(tok string) float64 {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
