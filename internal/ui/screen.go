// Package ui is the terminal frontend: it plays the game on a tcell screen,
// scaling the window layout down to character cells.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Screen is the terminal the game draws on.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return NewScreenFrom(term)
}

// NewScreenFrom takes over an already created tcell screen, such as a
// simulation screen.
func NewScreenFrom(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal. Pending Events readers stop afterwards.
func (s *Screen) Close() { s.term.Fini() }

// Events forwards terminal events until the screen is closed or done is
// closed. Only the forwarding happens on another goroutine.
func (s *Screen) Events(done <-chan struct{}) <-chan tcell.Event {
	out := make(chan tcell.Event)
	go func() {
		defer close(out)
		for {
			ev := s.term.PollEvent()
			if ev == nil {
				return
			}
			select {
			case out <- ev:
			case <-done:
				return
			}
		}
	}()
	return out
}

// Resized redraws every cell after the terminal changed size.
func (s *Screen) Resized() { s.term.Sync() }

func (s *Screen) Clear()                    { s.term.Clear() }
func (s *Screen) Show()                     { s.term.Show() }
func (s *Screen) Size() (width, height int) { return s.term.Size() }

// SetContent puts one grapheme cluster into a cell; runes after the first are
// combining characters.
func (s *Screen) SetContent(x, y int, cluster []rune, style tcell.Style) {
	if len(cluster) == 0 {
		return
	}
	s.term.SetContent(x, y, cluster[0], cluster[1:], style)
}

// canvas is what the renderer draws through.
type canvas interface {
	Clear()
	Show()
	Size() (width, height int)
	SetContent(x, y int, cluster []rune, style tcell.Style)
}

// putText writes s starting at (x, y) and returns the column after it. Wide
// graphemes advance two cells.
func putText(c canvas, x, y int, s string, style tcell.Style) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		c.SetContent(x, y, g.Runes(), style)
		x += max(g.Width(), 1)
	}
	return x
}

// putRune writes a single-rune cell.
func putRune(c canvas, x, y int, r rune, style tcell.Style) {
	c.SetContent(x, y, []rune{r}, style)
}

func textWidth(s string) int { return uniseg.StringWidth(s) }
