package core

import "time"

// Stream names the output a record was written to.
type Stream string

const (
	StreamStdout Stream = "stdout"
	StreamStderr Stream = "stderr"
)

// Reason explains why a record went to the error stream.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonBlank    Reason = "blank"
	ReasonOverlong Reason = "overlong"
)

// Record is one classified input line.
type Record struct {
	Seq    int64     `json:"seq"` // 1-based record number
	Stream Stream    `json:"stream"`
	Time   time.Time `json:"time"`
	Text   string    `json:"text"` // emitted text without the trailing newline
	Reason Reason    `json:"reason,omitempty"`
}

// Diagnostic reports whether the record is an error-stream diagnostic.
func (r Record) Diagnostic() bool {
	return r.Stream == StreamStderr
}
