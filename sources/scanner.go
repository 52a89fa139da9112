package sources

import (
	"bufio"
	"io"

	"github.com/elastiflow/pipes"
)

// scanner outputs one token per trigger from a bufio.Scanner.
type scanner struct {
	sc   *bufio.Scanner
	done bool
}

// FromScanner creates a source over the tokens of a bufio.Scanner, typically
// the lines of a file or other reader. The source is exhausted when the
// scanner is, and exhaustion is terminal. A scan error other than io.EOF is
// not distinguishable from exhaustion here; callers that care should check
// sc.Err after the pipeline drains.
func FromScanner(sc *bufio.Scanner) pipes.Pipe[pipes.Unit, pipes.Option[string]] {
	return &scanner{sc: sc}
}

// FromReader creates a line source over r.
func FromReader(r io.Reader) pipes.Pipe[pipes.Unit, pipes.Option[string]] {
	return FromScanner(bufio.NewScanner(r))
}

// Next outputs the next token, or the absent Option once the scanner is
// spent.
func (s *scanner) Next(pipes.Unit) pipes.Option[string] {
	if s.done || !s.sc.Scan() {
		s.done = true
		return pipes.None[string]()
	}
	return pipes.Some(s.sc.Text())
}
