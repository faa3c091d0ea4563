package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) (n int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			peak = math.Max(peak, math.Abs(buf[i][1]))
		}
		n += k
		if !ok || k == 0 {
			return n, peak
		}
	}
}

func TestCueLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	notes := []Note{
		{Freq: 440, Duration: 100 * time.Millisecond},
		{Freq: 220, Duration: 50 * time.Millisecond},
	}

	s, err := Cue(rate, notes, 1)
	if err != nil {
		t.Fatalf("Cue() failed: %v", err)
	}

	n, peak := drain(t, s)
	if want := rate.N(150 * time.Millisecond); n != want {
		t.Errorf("streamed %d samples, expected %d", n, want)
	}
	if peak > 1.0001 || peak < 0.5 {
		t.Errorf("peak = %f, expected a full-scale sine", peak)
	}
}

func TestCueVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	s, err := Cue(rate, eatCue, 0.25)
	if err != nil {
		t.Fatalf("Cue() failed: %v", err)
	}

	_, peak := drain(t, s)
	if peak > 0.2501 {
		t.Errorf("peak = %f, expected at most 0.25", peak)
	}
}

func TestCueRejectsBadFrequency(t *testing.T) {
	// A tone above the Nyquist frequency cannot be generated.
	if _, err := Cue(beep.SampleRate(8000), []Note{{Freq: 10000, Duration: time.Millisecond}}, 1); err == nil {
		t.Error("expected error for a tone above half the sample rate")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(0.5)

	// None of these may touch the speaker.
	p.Eat()
	p.GameOver()
	p.Close()
	p.Close()
}
