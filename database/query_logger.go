package database

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm/logger"
)

// QueryTrace is one executed SQL statement kept for the debug endpoint
type QueryTrace struct {
	Seq       int           `json:"seq"`
	SQL       string        `json:"sql"`
	Duration  time.Duration `json:"duration"`
	Rows      int64         `json:"rows"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// TraceRing keeps the most recent executed statements in a fixed-size ring
type TraceRing struct {
	mu   sync.RWMutex
	buf  []QueryTrace
	next int
	size int
	seq  int
}

// SQLTracer is the process-wide statement trace
var SQLTracer = NewTraceRing(200)

// NewTraceRing creates a trace ring holding up to capacity entries
func NewTraceRing(capacity int) *TraceRing {
	return &TraceRing{
		buf: make([]QueryTrace, capacity),
	}
}

// Record stores one executed statement, evicting the oldest when full
func (r *TraceRing) Record(sql string, duration time.Duration, rows int64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	entry := QueryTrace{
		Seq:       r.seq,
		SQL:       sql,
		Duration:  duration,
		Rows:      rows,
		Timestamp: time.Now(),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	r.buf[r.next] = entry
	r.next = (r.next + 1) % len(r.buf)
	if r.size < len(r.buf) {
		r.size++
	}
}

// Snapshot returns the recorded statements, newest first
func (r *TraceRing) Snapshot() []QueryTrace {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]QueryTrace, 0, r.size)
	for i := 1; i <= r.size; i++ {
		idx := (r.next - i + len(r.buf)) % len(r.buf)
		out = append(out, r.buf[idx])
	}
	return out
}

// Reset discards all recorded statements
func (r *TraceRing) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next = 0
	r.size = 0
}

// tracingLogger wraps a GORM logger and mirrors every statement into SQLTracer
type tracingLogger struct {
	logger.Interface
}

func (l *tracingLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.Interface != nil {
		l.Interface.Trace(ctx, begin, fc, err)
	}

	sql, rows := fc()
	SQLTracer.Record(sql, time.Since(begin), rows, err)
}
