// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"fmt"
	"io"
	"time"
)

type spinner struct {
	frames []string
	index  int
}

func newSpinner() spinner { return spinner{frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}} }
func (s *spinner) tick()   { s.index = (s.index + 1) % len(s.frames) }
func (s spinner) View() string { return s.frames[s.index] }

// whileBusy runs fn and animates label on w until fn returns. The line is
// cleared before returning.
func whileBusy(w io.Writer, label string, fn func()) {
	sp := newSpinner()
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				sp.tick()
				fmt.Fprintf(w, "\r%s %s\x1b[K", sp.View(), label)
			}
		}
	}()

	fn()
	close(done)
	<-stopped
	fmt.Fprint(w, "\r\x1b[K")
}
