package report

import (
	"time"
)

const FormatVersion = "1.0"

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

const MethodGutmann = "gutmann-35"

// Report is the erasure record written after a wipe.
type Report struct {
	FormatVersion string    `yaml:"format_version"`
	ID            string    `yaml:"id"`
	Method        string    `yaml:"method"`
	Path          string    `yaml:"path"`
	FullPath      string    `yaml:"full_path"`
	Size          int64     `yaml:"size"`
	RandomSource  string    `yaml:"random_source"`
	ChunkSize     int       `yaml:"chunk_size"`
	Host          string    `yaml:"host,omitempty"`
	Operator      string    `yaml:"operator,omitempty"`
	StartedAt     time.Time `yaml:"started_at"`
	FinishedAt    time.Time `yaml:"finished_at"`
	Status        string    `yaml:"status"`
	PassesDone    int       `yaml:"passes_completed"`
	BytesWritten  int64     `yaml:"bytes_written"`
	Failure       *Failure  `yaml:"failure,omitempty"`
	Deleted       bool      `yaml:"deleted"`
	Digest        string    `yaml:"sha256_after,omitempty"`
}

// Failure records where an aborted wipe stopped.
type Failure struct {
	Kind    string `yaml:"kind"`
	Pass    int    `yaml:"pass,omitempty"`
	SubPass int    `yaml:"sub_pass,omitempty"`
	Chunk   int    `yaml:"chunk,omitempty"`
	Offset  int64  `yaml:"offset"`
	Message string `yaml:"message"`
}
