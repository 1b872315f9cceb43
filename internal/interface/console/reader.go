package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ScoreReader reads raw input lines from a stream. Parsing stays in this
// layer: the grading core never sees unparsed text, and a line that is not
// numeric is reported as a parse error, never a domain error.
type ScoreReader struct {
	scanner *bufio.Scanner
}

// NewScoreReader creates a reader over the given input stream.
func NewScoreReader(r io.Reader) *ScoreReader {
	return &ScoreReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next input line with surrounding whitespace
// trimmed. The second return value is false at end of input.
func (r *ScoreReader) ReadLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

// ParseScore parses a candidate grade line into a number. The result is
// not range-checked here; that is the grading core's contract.
func ParseScore(line string) (float64, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("parse score: empty input")
	}

	score, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("parse score: %q is not a number", line)
	}
	return score, nil
}
