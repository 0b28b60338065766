package synth

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain 读取流的全部样本
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var all [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok || n == 0 {
			return all
		}
	}
	t.Fatal("stream did not terminate")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		name     string
		wave     WaveType
		duration time.Duration
	}{
		{"sine 100ms", WaveSine, 100 * time.Millisecond},
		{"square 50ms", WaveSquare, 50 * time.Millisecond},
		{"triangle 200ms", WaveTriangle, 200 * time.Millisecond},
		{"noise 10ms", WaveNoise, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, tt.duration, tt.wave, testRate, rand.New(rand.NewPCG(1, 2)))
			samples := drain(t, osc)

			if want := testRate.N(tt.duration); len(samples) != want {
				t.Errorf("expected %d samples, got %d", want, len(samples))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 {
					t.Fatalf("sample %d out of range: %f", i, s[0])
				}
				if s[0] != s[1] {
					t.Fatalf("sample %d: channels differ", i)
				}
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	samples := drain(t, NewOscillator(880, 10*time.Millisecond, WaveSquare, testRate, nil))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %d should be ±1, got %f", i, s[0])
		}
	}
}

func TestDecayEnvelope(t *testing.T) {
	// 直流输入便于检查增益曲线
	dc := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	d := NewDecay(beep.Take(testRate.N(100*time.Millisecond), dc), 0.1, 0.0001, 100*time.Millisecond, testRate)
	samples := drain(t, d)

	if len(samples) == 0 {
		t.Fatal("expected samples")
	}
	if math.Abs(samples[0][0]-0.1) > 1e-9 {
		t.Errorf("first sample gain = %f, want 0.1", samples[0][0])
	}
	for i := 1; i < len(samples); i++ {
		if samples[i][0] > samples[i-1][0] {
			t.Fatalf("gain must not increase: sample %d = %f > %f", i, samples[i][0], samples[i-1][0])
		}
	}
	if last := samples[len(samples)-1][0]; last > 0.001 {
		t.Errorf("last sample gain = %f, want close to 0.0001", last)
	}
}

func TestClipDurations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	tests := []struct {
		name     string
		streamer beep.Streamer
		duration time.Duration
	}{
		{"shoot", Shoot(testRate), shootDuration},
		{"explosion", Explosion(testRate, false, rng), explosionDuration},
		{"boss explosion", Explosion(testRate, true, rng), bossExplosionDuration},
		{"bgm", BGM(testRate), bgmNoteDuration * time.Duration(len(BGMNotes))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := Render(tt.streamer)
			// 每个样本 2 声道 × 2 字节
			want := testRate.N(tt.duration) * 4
			// BGM 由多个音符拼接，每个音符单独取整
			if tt.name == "bgm" {
				want = testRate.N(bgmNoteDuration) * len(BGMNotes) * 4
			}
			if len(pcm) != want {
				t.Errorf("expected %d bytes, got %d", want, len(pcm))
			}
		})
	}
}

func TestRenderClampsAndEncodes(t *testing.T) {
	values := [][2]float64{{2, -2}, {0.5, 0}}
	pos := 0
	s := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(values) {
			return 0, false
		}
		n := copy(samples, values[pos:])
		pos += n
		return n, true
	})

	pcm := Render(s)
	if len(pcm) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(pcm))
	}

	want := []int16{math.MaxInt16, -math.MaxInt16, 16383 /* int16(0.5*MaxInt16) truncated */, 0}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestRenderAllDeterministic(t *testing.T) {
	a := RenderAll(testRate, 42)
	b := RenderAll(testRate, 42)

	if string(a.Explosion) != string(b.Explosion) {
		t.Error("explosion noise should be reproducible for the same seed")
	}
	if len(a.Shoot) == 0 || len(a.BossExplosion) == 0 || len(a.BGM) == 0 {
		t.Error("all clips should be rendered")
	}
	if len(a.BossExplosion) <= len(a.Explosion) {
		t.Error("boss explosion should be longer than a regular explosion")
	}
}
