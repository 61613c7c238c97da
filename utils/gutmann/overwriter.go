package gutmann

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// DefaultChunkSize caps a single write at 64 MiB.
const DefaultChunkSize = 64 << 20

// Target is the file being wiped. *os.File satisfies it.
type Target interface {
	io.WriteSeeker
	Sync() error
}

// ProgressFunc is called once at the start of every pass.
type ProgressFunc func(pass int)

// Result summarises a completed run.
type Result struct {
	Passes       int
	SubPasses    int
	BytesWritten int64
	// Patterns is the shuffled table the run used; row i fed pass i+5.
	Patterns []Pattern
	Started  time.Time
	Finished time.Time
}

// Overwriter runs the 35-pass Gutmann schedule over a Target.
type Overwriter struct {
	src       Source
	chunkSize int
	schedule  Schedule
	patterns  []Pattern
	progress  ProgressFunc
	logger    *zap.Logger
}

// Option configures an Overwriter.
type Option func(*Overwriter)

// WithSource sets the random source. Without it a crypto-seeded source is
// created on every Overwrite call.
func WithSource(src Source) Option {
	return func(o *Overwriter) { o.src = src }
}

// WithChunkSize sets the largest single write. Non-positive values are ignored.
func WithChunkSize(n int) Option {
	return func(o *Overwriter) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

func WithSchedule(s Schedule) Option {
	return func(o *Overwriter) { o.schedule = s }
}

// WithPatterns replaces the pattern table. The slice is copied.
func WithPatterns(p []Pattern) Option {
	return func(o *Overwriter) { o.patterns = append([]Pattern(nil), p...) }
}

func WithProgress(fn ProgressFunc) Option {
	return func(o *Overwriter) { o.progress = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Overwriter) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewOverwriter returns an Overwriter with the default schedule, patterns and
// chunk size.
func NewOverwriter(opts ...Option) *Overwriter {
	o := &Overwriter{
		chunkSize: DefaultChunkSize,
		schedule:  DefaultSchedule(),
		patterns:  DefaultPatterns(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Overwrite rewrites the first length bytes of t 105 times, syncing after
// every chunk. The pattern table is shuffled once per call. On failure the
// returned error is an *Error and t holds a partially overwritten mix of
// passes; nothing is retried. Overwrite never closes t.
func (o *Overwriter) Overwrite(ctx context.Context, t Target, length int64) (*Result, error) {
	if length < 0 {
		return nil, fmt.Errorf("invalid length %d", length)
	}
	if err := o.schedule.validate(len(o.patterns)); err != nil {
		return nil, fmt.Errorf("invalid schedule: %w", err)
	}

	src := o.src
	if src == nil {
		var err error
		if src, err = NewCryptoSource(); err != nil {
			return nil, err
		}
	}

	table := append([]Pattern(nil), o.patterns...)
	Shuffle(table, src)

	bufSize := int64(o.chunkSize)
	if length < bufSize {
		bufSize = length
	}
	buf := make([]byte, bufSize)

	res := &Result{Patterns: table, Started: time.Now()}
	o.logger.Debug("overwrite started",
		zap.Int64("length", length),
		zap.Int("chunk_size", o.chunkSize))

	for _, step := range o.schedule {
		if o.progress != nil {
			o.progress(step.Pass)
		}
		for col := 0; col < SubPasses; col++ {
			fill := src.Fill
			if step.Kind == Fixed {
				// the buffer is constant for the whole sub-pass
				fillByte(buf, table[step.Row][col])
				fill = nil
			}
			n, err := o.subPass(ctx, t, length, buf, fill, step.Pass, col+1)
			res.BytesWritten += n
			if err != nil {
				o.logger.Debug("overwrite aborted", zap.Error(err), zap.Int64("bytes_written", res.BytesWritten))
				return nil, err
			}
		}
		res.Passes++
		o.logger.Debug("pass complete", zap.Int("pass", step.Pass), zap.Stringer("kind", step.Kind))
	}

	res.SubPasses = res.Passes * SubPasses
	res.Finished = time.Now()
	return res, nil
}

// subPass writes one full traversal of the target starting at offset 0.
func (o *Overwriter) subPass(ctx context.Context, t Target, length int64, buf []byte, fill func([]byte), pass, sub int) (int64, error) {
	var written int64
	fail := func(kind Kind, chunk int, err error) error {
		return &Error{Kind: kind, Pass: pass, SubPass: sub, Chunk: chunk, Offset: written, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return 0, fail(KindCanceled, 1, err)
	}
	if _, err := t.Seek(0, io.SeekStart); err != nil {
		return 0, fail(KindWrite, 1, fmt.Errorf("seek: %w", err))
	}

	for chunk := 1; written < length; chunk++ {
		if chunk > 1 {
			if err := ctx.Err(); err != nil {
				return written, fail(KindCanceled, chunk, err)
			}
		}

		n := length - written
		if n > int64(len(buf)) {
			n = int64(len(buf))
		}
		p := buf[:n]
		if fill != nil {
			fill(p)
		}

		m, err := t.Write(p)
		if err == nil && int64(m) != n {
			err = io.ErrShortWrite
		}
		if err != nil {
			return written + int64(m), fail(KindWrite, chunk, err)
		}
		if err := t.Sync(); err != nil {
			return written + n, fail(KindFlush, chunk, err)
		}
		written += n
	}
	return written, nil
}

func fillByte(p []byte, b byte) {
	if len(p) == 0 {
		return
	}
	p[0] = b
	for filled := 1; filled < len(p); filled *= 2 {
		copy(p[filled:], p[:filled])
	}
}
