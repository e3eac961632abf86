// internal/logging/logging.go
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Options mirror the logging section of the config file.
type Options struct {
	File     string
	Dir      string
	RotateMB int
	Keep     int
	Stderr   bool
	Redact   bool
	Level    string
	EventLog bool
	// Name is the event log source name.
	Name string
	// Console replaces os.Stderr as the console stream when set.
	Console io.Writer
}

// Logger is a logrus logger whose output is redacted line by line.
type Logger struct {
	*logrus.Logger

	redact *redactor
	file   *rotatingFileWriter
}

// New builds a Logger. Event log registration failures are logged, not
// returned, so a missing event source never blocks a login.
func New(opts Options) (*Logger, error) {
	lvl := logrus.InfoLevel
	if strings.TrimSpace(opts.Level) != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = l
	}

	out := &Logger{
		Logger: logrus.New(),
		redact: newRedactor(opts.Redact),
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var dst io.Writer
	if path := logFilePath(opts.File, opts.Dir); path != "" {
		out.file = newRotatingFileWriter(path, opts.RotateMB, opts.Keep)
	}
	switch {
	case out.file != nil && opts.Stderr:
		dst = io.MultiWriter(console, out.file)
	case out.file != nil:
		dst = out.file
	case opts.Stderr:
		dst = console
	default:
		dst = io.Discard
	}

	out.SetOutput(newLineSanitizingWriter(dst, out.redact))
	out.SetLevel(lvl)
	out.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	if opts.EventLog {
		name := opts.Name
		if name == "" {
			name = "skypelogin"
		}
		hook, err := newEventLogHook(name, out.redact)
		if err != nil {
			out.WithError(err).Warn("event log unavailable")
		} else {
			out.AddHook(hook)
		}
	}
	return out, nil
}

// AddSecret makes every later log line replace s with [REDACTED].
func (l *Logger) AddSecret(s string) {
	l.redact.add(s)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

type redactor struct {
	enabled bool

	mu       sync.Mutex
	secrets  map[string]struct{}
	replacer atomic.Value // stores *strings.Replacer
}

func newRedactor(enabled bool) *redactor {
	r := &redactor{enabled: enabled, secrets: map[string]struct{}{}}
	r.replacer.Store(strings.NewReplacer())
	return r
}

func (r *redactor) add(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.secrets[s]; ok {
		return
	}
	r.secrets[s] = struct{}{}

	pairs := make([]string, 0, len(r.secrets)*2)
	for sec := range r.secrets {
		pairs = append(pairs, sec, "[REDACTED]")
	}
	r.replacer.Store(strings.NewReplacer(pairs...))
}

func (r *redactor) line(line string) string {
	if !r.enabled {
		return line
	}
	out := line
	if v, ok := r.replacer.Load().(*strings.Replacer); ok {
		out = v.Replace(out)
	}
	out = redactLongBlobs(out)
	out = redactKeyValueHints(out)
	return out
}

type lineSanitizingWriter struct {
	dst    io.Writer
	redact *redactor

	mu  sync.Mutex
	buf bytes.Buffer
}

func newLineSanitizingWriter(dst io.Writer, r *redactor) *lineSanitizingWriter {
	return &lineSanitizingWriter{dst: dst, redact: r}
}

func (w *lineSanitizingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(p)
	_, _ = w.buf.Write(p)

	for {
		b := w.buf.Bytes()
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			break
		}
		line := string(b[:i+1])
		w.buf.Next(i + 1)

		if _, err := io.WriteString(w.dst, w.redact.line(line)); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Credential codes are long hex runs; anything this long is treated as a blob.
func redactLongBlobs(s string) string {
	const minLen = 64
	const blobChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/=_-"

	var b strings.Builder
	b.Grow(len(s))

	runStart := -1
	flush := func(end int) {
		if end-runStart >= minLen {
			b.WriteString("[REDACTED_BLOB]")
		} else {
			b.WriteString(s[runStart:end])
		}
		runStart = -1
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(blobChars, s[i]) >= 0 {
			if runStart == -1 {
				runStart = i
			}
			continue
		}
		if runStart != -1 {
			flush(i)
		}
		b.WriteByte(s[i])
	}
	if runStart != -1 {
		flush(len(s))
	}
	return b.String()
}

// Redact obvious key/value hints (all occurrences).
func redactKeyValueHints(s string) string {
	keys := []string{"password=", "pass=", "pwd=", "secret=", "code=", "key="}
	out := s

	for _, k := range keys {
		from := 0
		for {
			lo := strings.ToLower(out)
			idx := strings.Index(lo[from:], k)
			if idx < 0 {
				break
			}
			start := from + idx + len(k)
			if start < len(out) && out[start] == '"' {
				start++
			}
			end := start
			for end < len(out) {
				ch := out[end]
				if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' ||
					ch == ',' || ch == '"' || ch == '\'' ||
					ch == '&' || ch == '?' || ch == '#' || ch == ';' ||
					ch == ')' || ch == ']' || ch == '}' {
					break
				}
				end++
			}
			if start < end && out[start:end] != "[REDACTED]" {
				out = out[:start] + "[REDACTED]" + out[end:]
			}
			from = start
		}
	}
	return out
}
