// Package dialog provides linear conversations and the word wrap used to lay them out.
package dialog

import "strings"

// Line is one entry of a conversation. Portrait names the image shown beside
// the text; an empty Portrait means the text box has no picture.
type Line struct {
	Text     string `json:"text"`
	Portrait string `json:"portrait,omitempty"`
}

// Session walks an ordered list of lines. Once the cursor passes the last
// line the session is inactive until the next Start.
type Session struct {
	lines  []Line
	cursor int
	active bool
}

// Start begins a conversation at its first line. An empty list leaves the
// session inactive.
func (s *Session) Start(lines []Line) {
	s.lines = lines
	s.cursor = 0
	s.active = len(lines) > 0
}

// Advance moves to the next line. It returns false, and deactivates the
// session, when there is no next line.
func (s *Session) Advance() bool {
	if !s.active {
		return false
	}
	s.cursor++
	if s.cursor >= len(s.lines) {
		s.active = false
		return false
	}
	return true
}

// Current returns the line under the cursor.
func (s *Session) Current() (Line, bool) {
	if !s.active || s.cursor >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[s.cursor], true
}

// Active reports whether a line is being shown.
func (s *Session) Active() bool {
	return s.active
}

// Cursor returns the index of the current line.
func (s *Session) Cursor() int {
	return s.cursor
}

// Wrap packs words greedily into lines narrower than maxWidth, as measured
// by measure. Every produced line keeps one trailing space after its last
// word. A word too wide to fit anywhere gets a line to itself.
func Wrap(text string, maxWidth int, measure func(string) int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := current + word + " "
		if measure(candidate) < maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word + " "
	}
	return append(lines, current)
}
