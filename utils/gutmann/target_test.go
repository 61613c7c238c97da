package gutmann

import (
	"errors"
	"io"
)

// traversal summarises the bytes written between two seeks to offset 0.
type traversal struct {
	bytes   int64
	first   byte
	uniform bool
	data    []byte
}

// recordingTarget is an in-memory Target that keeps the final content and a
// per-sub-pass summary of what was written.
type recordingTarget struct {
	content    []byte
	pos        int64
	keep       int // number of leading traversals whose raw data is kept
	traversals []*traversal
	writes     int
	syncs      int
}

func newRecordingTarget(initial []byte) *recordingTarget {
	return &recordingTarget{content: append([]byte(nil), initial...)}
}

func (r *recordingTarget) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekStart || offset != 0 {
		return 0, errors.New("unexpected seek")
	}
	r.pos = 0
	r.traversals = append(r.traversals, &traversal{uniform: true})
	return 0, nil
}

func (r *recordingTarget) Write(p []byte) (int, error) {
	r.writes++
	end := r.pos + int64(len(p))
	if end > int64(len(r.content)) {
		return 0, errors.New("write past end of file")
	}
	copy(r.content[r.pos:], p)

	tr := r.traversals[len(r.traversals)-1]
	if tr.bytes == 0 && len(p) > 0 {
		tr.first = p[0]
	}
	for _, b := range p {
		if b != tr.first {
			tr.uniform = false
			break
		}
	}
	if len(r.traversals) <= r.keep {
		tr.data = append(tr.data, p...)
	}
	tr.bytes += int64(len(p))
	r.pos = end
	return len(p), nil
}

func (r *recordingTarget) Sync() error {
	r.syncs++
	return nil
}

// countingTarget tracks position and volume without storing data.
type countingTarget struct {
	size    int64
	pos     int64
	maxEnd  int64
	written int64
	writes  int

	failAt  int // 1-based write number that fails, 0 disables
	failErr error
	syncErr error
}

func (c *countingTarget) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekStart {
		return 0, errors.New("unexpected whence")
	}
	c.pos = offset
	return offset, nil
}

func (c *countingTarget) Write(p []byte) (int, error) {
	c.writes++
	if c.failAt > 0 && c.writes == c.failAt {
		return 0, c.failErr
	}
	c.pos += int64(len(p))
	if c.pos > c.maxEnd {
		c.maxEnd = c.pos
	}
	c.written += int64(len(p))
	return len(p), nil
}

func (c *countingTarget) Sync() error {
	return c.syncErr
}
