// Package processor implements the read-classify-write loop: blank lines
// become diagnostics on the error stream, everything else is echoed to the
// output stream behind a timestamp.
package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/docker/go-units"

	"github.com/modoterra/stampline/pkg/core"
	"github.com/modoterra/stampline/pkg/stamp"
	"github.com/modoterra/stampline/pkg/textutil"
)

// BlankDiagnostic is written to the error stream for every blank line.
const BlankDiagnostic = "ERROR: Empty or whitespace-only line received."

const overlongDiagnostic = "ERROR: Line exceeds maximum length (%s); discarded."

// Options configures a Processor. The zero value is usable.
type Options struct {
	MaxLineBytes int
	Overlong     Overlong
	Clock        stamp.Clock
	Styler       *stamp.Styler
	Sink         core.Sink
	Logger       *slog.Logger
}

// Processor writes substantive lines to stdout and diagnostics to stderr.
type Processor struct {
	stdout io.Writer
	stderr io.Writer
	opts   Options
	logger *slog.Logger
	buf    []byte

	// splitting is set while the chunks of a split line are arriving;
	// splitContent records whether any of them was substantive.
	splitting    bool
	splitContent bool

	mu    sync.Mutex
	stats Stats // last completed snapshot, read on cancellation
}

// New creates a processor writing to the given streams.
func New(stdout, stderr io.Writer, opts Options) *Processor {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	if opts.Overlong == "" {
		opts.Overlong = OverlongTruncate
	}
	if opts.Clock == nil {
		opts.Clock = stamp.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Processor{
		stdout: stdout,
		stderr: stderr,
		opts:   opts,
		logger: logger,
	}
}

// Run processes r until end of input. A clean end of input returns a nil
// error; read and write failures are returned wrapped.
//
// Cancelling ctx makes Run return ctx.Err() at once, even while a read is
// blocked. The blocked read is abandoned; a line that arrives after
// cancellation is read but not processed. Stats returned on cancellation
// cover the lines completed so far.
func (p *Processor) Run(ctx context.Context, r io.Reader) (Stats, error) {
	p.logger.Debug("processing input",
		"max_line_bytes", p.opts.MaxLineBytes,
		"overlong", p.opts.Overlong)

	type result struct {
		stats Stats
		err   error
	}
	done := make(chan result, 1)
	go func() {
		stats, err := p.loop(ctx, r)
		done <- result{stats, err}
	}()

	select {
	case res := <-done:
		return res.stats, res.err
	case <-ctx.Done():
		stats := p.snapshot()
		p.logger.Info("processing interrupted", "stats", stats)
		return stats, ctx.Err()
	}
}

func (p *Processor) loop(ctx context.Context, r io.Reader) (Stats, error) {
	lr := NewLineReader(r, p.opts.MaxLineBytes, p.opts.Overlong)
	var stats Stats

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, err := lr.Next()
		if err == io.EOF {
			p.logger.Info("input exhausted", "stats", stats, "diagnostics", stats.Diagnostics())
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("read input: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		stats.Lines++
		err = p.handle(ctx, stats.Lines, line, &stats)
		p.record(stats)
		if err != nil {
			return stats, err
		}
	}
}

func (p *Processor) record(stats Stats) {
	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()
}

func (p *Processor) snapshot() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

func (p *Processor) handle(ctx context.Context, seq int64, line Line, stats *Stats) error {
	if line.Dropped > 0 {
		if p.opts.Overlong == OverlongReject {
			stats.Overlong++
			p.logger.Debug("line rejected", "seq", seq, "dropped_bytes", line.Dropped)
			msg := fmt.Sprintf(overlongDiagnostic, units.BytesSize(float64(p.opts.MaxLineBytes)))
			return p.diagnose(ctx, seq, msg, core.ReasonOverlong)
		}
		stats.Truncated++
		p.logger.Debug("line truncated", "seq", seq, "dropped_bytes", line.Dropped)
	}

	blank := textutil.IsBlank(line.Text) && !line.DroppedContent

	// Chunks of a split line are classified together: whitespace-only
	// chunks are skipped, and a single diagnostic is written only when
	// the whole line turned out blank.
	if line.Split || p.splitting {
		last := !line.Split
		p.splitting = line.Split
		if !blank {
			p.splitContent = true
		}
		hadContent := p.splitContent
		if last {
			p.splitContent = false
		}
		if blank {
			if last && !hadContent {
				stats.Blank++
				return p.diagnose(ctx, seq, BlankDiagnostic, core.ReasonBlank)
			}
			p.logger.Debug("whitespace chunk skipped", "seq", seq)
			return nil
		}
		return p.emit(ctx, seq, line.Text, stats)
	}

	if blank {
		stats.Blank++
		return p.diagnose(ctx, seq, BlankDiagnostic, core.ReasonBlank)
	}
	return p.emit(ctx, seq, line.Text, stats)
}

func (p *Processor) emit(ctx context.Context, seq int64, text []byte, stats *Stats) error {
	now := p.opts.Clock.Now()
	p.buf = p.opts.Styler.AppendPrefix(p.buf[:0], now)
	p.buf = append(p.buf, text...)
	p.buf = append(p.buf, '\n')
	if _, err := p.stdout.Write(p.buf); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	stats.Emitted++

	p.notify(ctx, core.Record{
		Seq:    seq,
		Stream: core.StreamStdout,
		Time:   now,
		Text:   string(text),
	})
	return nil
}

func (p *Processor) diagnose(ctx context.Context, seq int64, msg string, reason core.Reason) error {
	if _, err := io.WriteString(p.stderr, msg+"\n"); err != nil {
		return fmt.Errorf("write diagnostic: %w", err)
	}
	p.notify(ctx, core.Record{
		Seq:    seq,
		Stream: core.StreamStderr,
		Time:   p.opts.Clock.Now(),
		Text:   msg,
		Reason: reason,
	})
	return nil
}

func (p *Processor) notify(ctx context.Context, rec core.Record) {
	if p.opts.Sink == nil {
		return
	}
	if err := p.opts.Sink.Emit(ctx, rec); err != nil {
		p.logger.Warn("sink emit failed", "sink", p.opts.Sink.Name(), "seq", rec.Seq, "err", err)
	}
}
