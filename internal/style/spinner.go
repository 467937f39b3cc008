package style

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧"}

// Spinner shows an animated progress indicator while a blocking load
// runs. On a non-TTY writer it degrades to printing the message once.
type Spinner struct {
	w    io.Writer
	stop chan struct{}
	done chan struct{}
}

// StartSpinner begins animating msg on w. Call Stop when the operation
// completes; the line is cleared before Stop returns.
func StartSpinner(w io.Writer, msg string) *Spinner {
	s := &Spinner{w: w}

	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprintln(w, msg)
		return s
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.animate(msg)
	return s
}

func (s *Spinner) animate(msg string) {
	defer close(s.done)
	tick := time.NewTicker(80 * time.Millisecond)
	defer tick.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(s.w, "\r%s %s", Dim.Render(spinnerFrames[i%len(spinnerFrames)]), msg)
		select {
		case <-s.stop:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-tick.C:
		}
	}
}

// Stop ends the animation and clears the spinner line. Safe to call on
// a spinner that never animated.
func (s *Spinner) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
}
