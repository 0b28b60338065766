package synth

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate 合成使用的采样率，与音频上下文保持一致
const SampleRate = beep.SampleRate(44100)

// 音效参数
const (
	shootFreq     = 880.0
	shootDuration = 100 * time.Millisecond
	shootGain     = 0.1

	explosionDuration     = 200 * time.Millisecond
	explosionGain         = 0.2
	bossExplosionDuration = 800 * time.Millisecond
	bossExplosionGain     = 0.5

	// 衰减终点增益
	decayFloor = 0.0001

	bgmNoteDuration = 200 * time.Millisecond
	bgmGain         = 0.05
)

// BGMNotes 背景音乐音阶（C 大调，C4 到 C5）
var BGMNotes = []float64{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88, 523.25}

// Shoot 射击音效：短促的方波
func Shoot(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(shootFreq, shootDuration, WaveSquare, rate, nil)
	return NewDecay(osc, shootGain, decayFloor, shootDuration, rate)
}

// Explosion 爆炸音效：指数衰减的白噪声
// boss 为 true 时更长更响
func Explosion(rate beep.SampleRate, boss bool, rng *rand.Rand) beep.Streamer {
	duration, gain := explosionDuration, explosionGain
	if boss {
		duration, gain = bossExplosionDuration, bossExplosionGain
	}
	noise := NewOscillator(0, duration, WaveNoise, rate, rng)
	return NewDecay(noise, gain, decayFloor, duration, rate)
}

// BGM 背景音乐的一个循环周期：三角波依次演奏 BGMNotes
// 循环播放由调用方负责
func BGM(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(BGMNotes))
	for _, freq := range BGMNotes {
		notes = append(notes, NewOscillator(freq, bgmNoteDuration, WaveTriangle, rate, nil))
	}
	return newVolume(beep.Seq(notes...), bgmGain)
}

// Render 将有限长度的流渲染为 16 位小端立体声 PCM
func Render(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = appendSample(out, buf[i][0])
			out = appendSample(out, buf[i][1])
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func appendSample(out []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v))
	return binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
}

// Clips 预渲染的全部音频片段（PCM）
type Clips struct {
	Shoot         []byte
	Explosion     []byte
	BossExplosion []byte
	BGM           []byte
}

// RenderAll 渲染游戏用到的全部音频片段
// seed 决定爆炸噪声的随机序列
func RenderAll(rate beep.SampleRate, seed uint64) *Clips {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Clips{
		Shoot:         Render(Shoot(rate)),
		Explosion:     Render(Explosion(rate, false, rng)),
		BossExplosion: Render(Explosion(rate, true, rng)),
		BGM:           Render(BGM(rate)),
	}
}
