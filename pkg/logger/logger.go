// Package logger assembles zerolog loggers for applications that want to
// record the queries they build.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// Builder configures a logger destination before Make assembles it.
type Builder struct {
	writer io.Writer
	path   string
}

// New creates a logger builder. Without further configuration, Make
// produces a logger writing to stdout.
func New() *Builder {
	return &Builder{}
}

// ToPath directs log output to a file at path, created or appended to.
func (b *Builder) ToPath(path string) *Builder {
	b.path = path
	return b
}

// ToWriter directs log output to w. A path set with ToPath takes
// precedence.
func (b *Builder) ToWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// Log wraps a zerolog.Logger together with its backing file, if any.
type Log struct {
	file   *os.File
	Logger zerolog.Logger
}

// Make assembles the logger from the configured destination.
func (b *Builder) Make() (*Log, error) {
	l := new(Log)

	writer := b.writer
	if writer == nil {
		writer = os.Stdout
	}
	if b.path != "" {
		file, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		l.file = file
		writer = zerolog.SyncWriter(file)
	}

	l.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return l, nil
}

// Query records a built query string as a structured event under the
// given name.
func (l *Log) Query(name, sql string) {
	l.Logger.Info().Str("name", name).Msg(sql)
}

// Close closes the backing log file, if any.
func (l *Log) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
