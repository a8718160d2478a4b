// Package narrator reads question titles aloud through the platform's
// text-to-speech command.
package narrator

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
)

// Speaker voices a line of text. Implementations must not block the caller;
// the interview screen fires a speak per question and moves on.
type Speaker interface {
	Speak(text string, volume float64)
}

// Noop is a Speaker that stays silent. Used when no TTS command is
// available or narration is muted from the settings screen.
type Noop struct{}

func (Noop) Speak(string, float64) {}

// Exec shells out to the host's speech synthesizer.
type Exec struct{}

// New returns the platform Speaker, or Noop when the host has no known
// speech command on PATH.
func New() Speaker {
	if _, err := exec.LookPath(command()); err != nil {
		return Noop{}
	}
	return Exec{}
}

// Speak voices text at the given volume in a background goroutine. A volume
// of zero or below mutes the line entirely. Synthesis failures are dropped;
// narration is best effort.
func (Exec) Speak(text string, volume float64) {
	if volume <= 0 || text == "" {
		return
	}
	if volume > 1 {
		volume = 1
	}
	cmd := speakCommand(text, volume)
	go func() {
		_ = cmd.Run()
	}()
}

func command() string {
	switch runtime.GOOS {
	case "darwin":
		return "say"
	case "windows":
		return "powershell"
	default:
		return "espeak"
	}
}

func speakCommand(text string, volume float64) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("say", fmt.Sprintf("[[volm %.2f]] %s", volume, text))
	case "windows":
		// SAPI volume is 0-100.
		script := fmt.Sprintf(
			"$s = New-Object -ComObject SAPI.SpVoice; $s.Volume = %d; $s.Speak(%q)",
			int(volume*100), text,
		)
		return exec.Command("powershell", "-NoProfile", "-Command", script)
	default:
		// espeak amplitude runs 0-200.
		return exec.Command("espeak", "-a", strconv.Itoa(int(volume*200)), text)
	}
}
