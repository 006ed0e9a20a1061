package processor

import "log/slog"

// Stats counts what a Run did.
type Stats struct {
	Lines     int64 // records read, including rejected ones
	Emitted   int64 // lines written to the output stream
	Blank     int64 // blank diagnostics written
	Overlong  int64 // overlong lines rejected
	Truncated int64 // overlong lines emitted after truncation
}

// Diagnostics is the number of lines written to the error stream.
func (s Stats) Diagnostics() int64 {
	return s.Blank + s.Overlong
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("lines", s.Lines),
		slog.Int64("emitted", s.Emitted),
		slog.Int64("blank", s.Blank),
		slog.Int64("overlong", s.Overlong),
		slog.Int64("truncated", s.Truncated),
	)
}
