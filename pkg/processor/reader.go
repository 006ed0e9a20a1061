package processor

import (
	"bufio"
	"fmt"
	"io"

	"github.com/modoterra/stampline/pkg/textutil"
)

// DefaultMaxLineBytes bounds the content of a single line.
const DefaultMaxLineBytes = 64 * 1024

// Overlong selects what happens to lines longer than the limit.
type Overlong string

const (
	// OverlongTruncate keeps the first MaxLineBytes bytes and drops the rest.
	OverlongTruncate Overlong = "truncate"
	// OverlongReject drops the whole line and reports a diagnostic.
	OverlongReject Overlong = "reject"
	// OverlongSplit processes the line as consecutive bounded chunks.
	OverlongSplit Overlong = "split"
)

// ParseOverlong accepts truncate, reject or split. The empty string means truncate.
func ParseOverlong(s string) (Overlong, error) {
	switch Overlong(s) {
	case "", OverlongTruncate:
		return OverlongTruncate, nil
	case OverlongReject, OverlongSplit:
		return Overlong(s), nil
	}
	return "", fmt.Errorf("overlong must be truncate, reject, or split; got %q", s)
}

// Line is one bounded line of input.
type Line struct {
	// Text is the content without the trailing newline. It is only valid
	// until the next call to Next.
	Text []byte

	// Dropped counts bytes past the limit that were discarded.
	Dropped int

	// DroppedContent is set when a discarded byte was not whitespace.
	DroppedContent bool

	// Split is set when the rest of the input line follows as the next Line.
	Split bool
}

// LineReader reads newline-terminated lines, never buffering more than
// max bytes of content per line.
type LineReader struct {
	r      *bufio.Reader
	max    int
	policy Overlong
	buf    []byte
}

// NewLineReader wraps r. A non-positive max selects DefaultMaxLineBytes.
func NewLineReader(r io.Reader, max int, policy Overlong) *LineReader {
	if max <= 0 {
		max = DefaultMaxLineBytes
	}
	return &LineReader{
		r:      bufio.NewReader(r),
		max:    max,
		policy: policy,
	}
}

// Next returns the next line. It returns io.EOF once the input is exhausted;
// a final line without a newline is returned normally first.
func (lr *LineReader) Next() (Line, error) {
	lr.buf = lr.buf[:0]
	var line Line
	read := false

	for {
		c, err := lr.r.ReadByte()
		if err != nil {
			if err == io.EOF && read {
				break
			}
			return Line{}, err
		}
		read = true

		if c == '\n' {
			break
		}
		if len(lr.buf) < lr.max {
			lr.buf = append(lr.buf, c)
			continue
		}

		// Over the limit.
		if lr.policy == OverlongSplit {
			if err := lr.r.UnreadByte(); err != nil {
				return Line{}, err
			}
			line.Split = true
			break
		}
		line.Dropped++
		if !textutil.IsSpace(c) {
			line.DroppedContent = true
		}
	}

	line.Text = lr.buf
	return line, nil
}
