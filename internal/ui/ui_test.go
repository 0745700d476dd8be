package ui

import (
	"strings"
	"testing"
	"time"
)

func TestNewUI(t *testing.T) {
	ui := NewUI(true, false)

	if !ui.IsVerbose() {
		t.Error("Expected verbose mode to be enabled")
	}

	if ui.IsQuiet() {
		t.Error("Expected quiet mode to be disabled")
	}
}

func TestUIQuietMode(t *testing.T) {
	ui := NewUI(false, true)

	output := captureStdout(t, func() {
		ui.Printf("formatted %s\n", "output")
		ui.Println("plain output")
		ui.Warning("a warning")
		ui.Error("an error")
		ui.Info("some info")
		ui.Success("a success")
	})

	if output != "" {
		t.Errorf("Expected no output in quiet mode, got %q", output)
	}
}

func TestUIVerbosePrintf(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		expect  bool
	}{
		{
			name:    "verbose enabled",
			verbose: true,
			expect:  true,
		},
		{
			name:    "verbose disabled",
			verbose: false,
			expect:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := NewUI(tt.verbose, false)

			output := captureStdout(t, func() {
				ui.VerbosePrintf("debug detail\n")
			})

			if tt.expect && !strings.Contains(output, "debug detail") {
				t.Error("Expected verbose output")
			}

			if !tt.expect && output != "" {
				t.Errorf("Expected no output, got %q", output)
			}
		})
	}
}

func TestUIMessages(t *testing.T) {
	ui := NewUI(false, false)

	output := captureStdout(t, func() {
		ui.Warning("watch out")
		ui.Error("it broke")
		ui.Success("all good")
	})

	if !strings.Contains(output, "⚠") || !strings.Contains(output, "watch out") {
		t.Error("Warning not displayed")
	}

	if !strings.Contains(output, "✗") || !strings.Contains(output, "it broke") {
		t.Error("Error not displayed")
	}

	if !strings.Contains(output, "✓") || !strings.Contains(output, "all good") {
		t.Error("Success not displayed")
	}
}

func TestPrintSection(t *testing.T) {
	output := captureStdout(t, func() {
		PrintSection("Account Details")
	})

	if !strings.Contains(output, "▶") {
		t.Error("Section marker not found")
	}

	if !strings.Contains(output, "Account Details") {
		t.Error("Section title not found")
	}

	if !strings.Contains(output, "─") {
		t.Error("Section separator not found")
	}
}

func TestPrintKeyValue(t *testing.T) {
	output := captureStdout(t, func() {
		PrintKeyValue("Account", "ACC001")
	})

	if !strings.Contains(output, "Account:") {
		t.Error("Key not found in output")
	}

	if !strings.Contains(output, "ACC001") {
		t.Error("Value not found in output")
	}
}

func TestShowGenerationSummary(t *testing.T) {
	output := captureStdout(t, func() {
		ShowGenerationSummary("Acme Corporation", "reports/ACC001.pptx", 3, 28, 14336, 1200*time.Millisecond)
	})

	checks := []string{
		"Deck Summary",
		"Acme Corporation",
		"3 slides",
		"28 shapes",
		"reports/ACC001.pptx",
		"14.0 KB",
		"1.2s",
	}

	for _, want := range checks {
		if !strings.Contains(output, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, output)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{
			name:     "bytes",
			size:     512,
			expected: "512 B",
		},
		{
			name:     "kilobytes",
			size:     14336,
			expected: "14.0 KB",
		},
		{
			name:     "megabytes",
			size:     3 * 1024 * 1024,
			expected: "3.0 MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatBytes(tt.size)
			if result != tt.expected {
				t.Errorf("formatBytes() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "milliseconds",
			duration: 500 * time.Millisecond,
			expected: "500ms",
		},
		{
			name:     "seconds",
			duration: 45 * time.Second,
			expected: "45.0s",
		},
		{
			name:     "minutes",
			duration: 3*time.Minute + 30*time.Second,
			expected: "3m30s",
		},
		{
			name:     "hours",
			duration: 2*time.Hour + 15*time.Minute,
			expected: "2h15m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatDuration(tt.duration)
			if result != tt.expected {
				t.Errorf("formatDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSpinnerStartStop(t *testing.T) {
	spinner := NewSpinner("Connecting to Snowflake")

	output := captureStdout(t, func() {
		spinner.Start()

		// Let it spin for a bit
		time.Sleep(250 * time.Millisecond)

		spinner.Stop(true, "Connected")
	})

	if !strings.Contains(output, "Connecting to Snowflake") {
		t.Error("Spinner message not displayed")
	}

	if !strings.Contains(output, "Connected") {
		t.Error("Completion message not displayed")
	}

	if !strings.Contains(output, "ms)") && !strings.Contains(output, "s)") {
		t.Errorf("Expected elapsed time after completion message, got: %s", output)
	}

	if !strings.Contains(output, "✓") {
		t.Error("Success checkmark not displayed")
	}
}

func TestSpinnerStopWithFailure(t *testing.T) {
	spinner := NewSpinner("Fetching account")

	output := captureStdout(t, func() {
		spinner.Start()
		time.Sleep(150 * time.Millisecond)
		spinner.Stop(false, "Fetch failed")
	})

	if !strings.Contains(output, "Fetch failed") {
		t.Error("Failure message not displayed")
	}

	if !strings.Contains(output, "✗") {
		t.Error("Failure mark not displayed")
	}
}

func TestSpinnerUpdateMessage(t *testing.T) {
	spinner := NewSpinner("Initial message")

	spinner.UpdateMessage("Updated message")

	spinner.mu.Lock()
	if spinner.message != "Updated message" {
		t.Errorf("Expected message to be 'Updated message', got '%s'", spinner.message)
	}
	spinner.mu.Unlock()
}

func TestUIStartStopProgress(t *testing.T) {
	ui := NewUI(false, false)

	output := captureStdout(t, func() {
		ui.StartProgress("Working")
		time.Sleep(150 * time.Millisecond)
		ui.StopProgress()
	})

	if !strings.Contains(output, "Done") {
		t.Error("Progress completion not displayed")
	}

	if ui.spinner != nil {
		t.Error("Spinner not cleared after StopProgress")
	}
}

func TestUIProgressQuietMode(t *testing.T) {
	ui := NewUI(false, true)

	output := captureStdout(t, func() {
		ui.StartProgress("Working")
		ui.StopProgress()
	})

	if output != "" {
		t.Errorf("Expected no progress output in quiet mode, got %q", output)
	}
}
