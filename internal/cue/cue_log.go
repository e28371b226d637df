package cue

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded cue event during a run.
type LogEntry struct {
	Frame    int
	Object   string  // cued object label, or "--" for global events
	Category string  // state, angle, pulse, warn
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=042] orb1 state   suppress        avg=12.0°
func (e LogEntry) String() string {
	return fmt.Sprintf("[F=%03d] %-6s %-7s %-16s %s",
		e.Frame, e.Object, e.Category, e.Key, e.Value)
}

// Log collects structured cue events. It is unbounded and machine-readable,
// consumed by the headless reporter and by tests; the on-screen HUD keeps
// its own bounded ring instead.
type Log struct {
	entries []LogEntry
	verbose bool
}

// NewLog creates a Log. If verbose is true, per-frame angle/pulse samples
// are also recorded (useful for detailed debugging).
func NewLog(verbose bool) *Log {
	return &Log{verbose: verbose}
}

// Add records a new entry. A nil Log drops the event, so controllers can be
// run without any log attached.
func (l *Log) Add(frame int, object, category, key, value string, numVal float64) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, LogEntry{
		Frame:    frame,
		Object:   object,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *Log) AddVerbose(frame int, object, category, key, value string, numVal float64) {
	if l == nil || !l.verbose {
		return
	}
	l.Add(frame, object, category, key, value, numVal)
}

// Entries returns all recorded entries in order.
func (l *Log) Entries() []LogEntry {
	if l == nil {
		return nil
	}
	return l.entries
}

// Filter returns entries matching the given object/category/key; empty
// strings match everything.
func (l *Log) Filter(object, category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range l.Entries() {
		if object != "" && e.Object != object {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Dump renders every entry as text, one line each.
func (l *Log) Dump() string {
	var b strings.Builder
	for _, e := range l.Entries() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
