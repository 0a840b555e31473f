// Package task defines the task domain model.
package task

import (
	"errors"
	"time"
	"unicode/utf8"
)

// MaxTextLen is the maximum task text length in runes, enforced on both
// add and edit.
const MaxTextLen = 100

var (
	// ErrEmptyText is returned when task text is empty after trimming.
	ErrEmptyText = errors.New("task text is empty")
	// ErrTextTooLong is returned when task text exceeds MaxTextLen runes.
	ErrTextTooLong = errors.New("task text exceeds 100 characters")
)

// Task is one user-entered to-do item.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// FormattedTimestamp returns the creation time as a short human-readable
// string (month, day, hour, minute).
func (t Task) FormattedTimestamp() string {
	return t.CreatedAt.Format("Jan 2, 15:04")
}

// TooLong reports whether text exceeds MaxTextLen runes.
func TooLong(text string) bool {
	return utf8.RuneCountInString(text) > MaxTextLen
}

// Filter selects which subset of tasks is shown.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the recognized filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// IsValid reports whether f is one of the recognized filters.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Match reports whether the task passes the filter. Unrecognized filters
// behave like FilterAll.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// ParseFilter maps a raw string to a Filter. Unrecognized values fall back
// to FilterAll.
func ParseFilter(s string) Filter {
	f := Filter(s)
	if !f.IsValid() {
		return FilterAll
	}
	return f
}

// Stats summarizes a task collection.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Count derives Stats from a collection.
func Count(tasks []Task) Stats {
	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		} else {
			st.Active++
		}
	}
	return st
}
