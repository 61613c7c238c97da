package report

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"gutwipe/utils/file"
	"gutwipe/utils/gutmann"
)

// New starts a report for the file described by info.
func New(info *file.FileInfo, randomSource string, chunkSize int) *Report {
	host, _ := os.Hostname()
	return &Report{
		FormatVersion: FormatVersion,
		ID:            uuid.NewString(),
		Method:        MethodGutmann,
		Path:          info.Path,
		FullPath:      info.FullPath,
		Size:          info.Size,
		RandomSource:  randomSource,
		ChunkSize:     chunkSize,
		Host:          host,
		StartedAt:     time.Now().UTC(),
	}
}

// Complete records the outcome of an overwrite run.
func (r *Report) Complete(res *gutmann.Result, err error) {
	r.FinishedAt = time.Now().UTC()
	if err == nil {
		r.Status = StatusSuccess
		if res != nil {
			r.PassesDone = res.Passes
			r.BytesWritten = res.BytesWritten
		}
		return
	}

	r.Status = StatusFailure
	r.Failure = &Failure{Kind: "error", Message: err.Error()}

	var werr *gutmann.Error
	if errors.As(err, &werr) {
		r.Failure.Kind = werr.Kind.String()
		r.Failure.Pass = werr.Pass
		r.Failure.SubPass = werr.SubPass
		r.Failure.Chunk = werr.Chunk
		r.Failure.Offset = werr.Offset
		if werr.Pass > 0 {
			r.PassesDone = werr.Pass - 1
			r.BytesWritten = int64((werr.Pass-1)*gutmann.SubPasses+(werr.SubPass-1))*r.Size + werr.Offset
		}
	}
}

// Marshal encodes the report as YAML.
func (r *Report) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a YAML report.
func Unmarshal(data []byte) (*Report, error) {
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &r, nil
}

// FileName is the base name used by every store.
func (r *Report) FileName() string {
	return r.ID + ".yaml"
}
