package gui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"codeberg.org/arvoss/wordlens/internal/pcm"
)

// AudioPlayer plays raw PCM pronunciation clips through an external platform
// player. The PCM is wrapped in a WAV container in a temporary file first,
// which is removed once playback finishes.
type AudioPlayer struct {
	mu      sync.Mutex
	playCmd *exec.Cmd
	tmpFile string
}

// NewAudioPlayer creates a new audio player
func NewAudioPlayer() *AudioPlayer {
	return &AudioPlayer{}
}

// PlayPCM plays a raw 16-bit mono PCM clip. A clip that is still playing is
// stopped first.
func (p *AudioPlayer) PlayPCM(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	p.Stop()

	f, err := os.CreateTemp("", "wordlens-*.wav")
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	if err := pcm.WriteWAV(f, raw); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	cmd, err := playbackCommand(f.Name())
	if err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := cmd.Start(); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("failed to start audio player: %w", err)
	}

	p.mu.Lock()
	p.playCmd = cmd
	p.tmpFile = f.Name()
	p.mu.Unlock()

	go func() {
		cmd.Wait()
		p.mu.Lock()
		if p.playCmd == cmd {
			p.playCmd = nil
			if p.tmpFile != "" {
				os.Remove(p.tmpFile)
				p.tmpFile = ""
			}
		}
		p.mu.Unlock()
	}()

	return nil
}

// Stop kills any running playback and removes the temporary clip.
func (p *AudioPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playCmd != nil && p.playCmd.Process != nil {
		p.playCmd.Process.Kill()
		p.playCmd = nil
	}
	if p.tmpFile != "" {
		os.Remove(p.tmpFile)
		p.tmpFile = ""
	}
}

// playbackCommand builds the platform-specific playback command for a WAV
// file.
func playbackCommand(file string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("afplay", file), nil
	case "linux":
		// Try multiple commands in order of preference
		if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", file), nil
		}
		if _, err := exec.LookPath("play"); err == nil {
			// SoX play command
			return exec.Command("play", "-q", file), nil
		}
		if _, err := exec.LookPath("paplay"); err == nil {
			return exec.Command("paplay", file), nil
		}
		if _, err := exec.LookPath("aplay"); err == nil {
			return exec.Command("aplay", "-q", file), nil
		}
		return nil, fmt.Errorf("no audio player found. Install ffplay, sox, paplay, or aplay")
	case "windows":
		return exec.Command("cmd", "/c", "start", "/min", file), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
