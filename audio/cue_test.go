package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func countSamples(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if smp[0] > 1.0001 || smp[0] < -1.0001 {
				t.Fatalf("sample out of range: %v", smp[0])
			}
		}
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	s, err := tone(applyNotes, noteLength, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := len(applyNotes) * sampleRate.N(noteLength)
	if got := countSamples(t, s); got != want {
		t.Errorf("samples = %d, want %d", got, want)
	}
}

func TestToneRejectsBadFrequency(t *testing.T) {
	// Above Nyquist
	if _, err := tone([]float64{float64(sampleRate)}, time.Millisecond, 0); err == nil {
		t.Error("expected error for frequency at sample rate")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(0)
	// Must not touch the speaker before Init
	p.Selected()
	p.Applied()
	p.Close()

	var s Silent
	s.Selected()
	s.Applied()
	s.Close()
}
