package audio

import (
	"math"
	"testing"
)

func TestChimeGeneratorDecays(t *testing.T) {
	g := NewChimeGenerator(sampleRate, 880)
	buf := make([][2]float64, sampleRate.N(pickupDuration))

	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream() = (%d, %v), expected (%d, true)", n, ok, len(buf))
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v, expected nil", g.Err())
	}

	peak := func(s [][2]float64) float64 {
		m := 0.0
		for _, v := range s {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}

	head := peak(buf[:len(buf)/4])
	tail := peak(buf[len(buf)*3/4:])
	if head <= tail {
		t.Errorf("chime should decay: head peak %f, tail peak %f", head, tail)
	}
	if head > 0.3 {
		t.Errorf("peak %f exceeds amplitude 0.3", head)
	}
}

func TestChimeGeneratorStereoMatches(t *testing.T) {
	g := NewChimeGenerator(sampleRate, 440)
	buf := make([][2]float64, 256)
	g.Stream(buf)

	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d: left %f != right %f", i, s[0], s[1])
		}
	}
}

func TestPickupStreamerLength(t *testing.T) {
	sm := NewSoundManager(1)
	s := sm.pickupStreamer()

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	expected := 2 * sampleRate.N(pickupDuration/2)
	if total != expected {
		t.Errorf("pickup length = %d samples, expected %d", total, expected)
	}
}

func TestVolumeSteps(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{1, 0},
		{2, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -10},
		{-1, -10},
	}

	for _, tc := range tests {
		if got := volumeSteps(tc.in); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("volumeSteps(%f) = %f, expected %f", tc.in, got, tc.expected)
		}
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.PlayPickup()
	sm.Cleanup()
	if sm.initialized {
		t.Error("manager should stay uninitialized")
	}
}
