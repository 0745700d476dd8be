package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates progress for long operations and reports the elapsed
// time when stopped successfully.
type Spinner struct {
	mu      sync.Mutex
	message string
	stopped bool
	started time.Time
	done    chan struct{}
	once    sync.Once
}

// NewSpinner creates a spinner with the given message
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		started: time.Now(),
		done:    make(chan struct{}),
	}
}

// Start begins the animation on its own goroutine
func (s *Spinner) Start() {
	go func() {
		frame := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.mu.Lock()
				if !s.stopped {
					// Trailing spaces clear leftovers from longer messages
					fmt.Printf("\r%s %s%s",
						ColorProgress(spinnerFrames[frame]),
						s.message,
						strings.Repeat(" ", 20),
					)
					frame = (frame + 1) % len(spinnerFrames)
				}
				s.mu.Unlock()
			}
		}
	}()
}

// Stop ends the animation and prints the final status line. Successful
// stops include the elapsed time. Stopping twice is a no-op beyond the
// extra status line.
func (s *Spinner) Stop(success bool, message string) {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.once.Do(func() { close(s.done) })

	// Clear the spinner line before the final status
	fmt.Print("\r\033[K")

	if success {
		elapsed := formatDuration(time.Since(s.started))
		fmt.Printf("%s %s %s\n", ColorSuccess("✓"), message, ColorDim("("+elapsed+")"))
	} else {
		fmt.Printf("%s %s\n", ColorError("✗"), message)
	}
}

// UpdateMessage swaps the text shown next to the spinner
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", hours, minutes)
}
