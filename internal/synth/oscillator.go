// Package synth 合成游戏音效和背景音乐
//
// 所有声音都由振荡器实时生成，不依赖音频文件。生成结果渲染为
// 16 位小端立体声 PCM，交给 Ebitengine 的音频上下文播放。
package synth

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator 生成定长的原始波形
type oscillator struct {
	freq     float64
	phase    float64
	position int
	total    int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand // 仅 WaveNoise 使用
}

// NewOscillator 创建振荡器
// rng 为 nil 时噪声使用全局随机源
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
		rng:   rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.total {
		return 0, false
	}

	for i := range samples {
		if o.position >= o.total {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.noise()
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) noise() float64 {
	if o.rng != nil {
		return o.rng.Float64()*2 - 1
	}
	return rand.Float64()*2 - 1
}

func (o *oscillator) Err() error { return nil }

// decay 指数衰减包络
// 增益从 start 按指数曲线降到 end，时长为 duration，之后保持 end
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	start    float64
	ratio    float64 // end / start
}

// NewDecay 创建指数衰减包络
// start 和 end 必须为正数
func NewDecay(s beep.Streamer, start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		total:    rate.N(duration),
		start:    start,
		ratio:    end / start,
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		progress := 1.0
		if d.total > 0 && d.position < d.total {
			progress = float64(d.position) / float64(d.total)
		}
		gain := d.start * math.Pow(d.ratio, progress)

		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume 包装线性音量
// math.Log2(0) 为 -Inf，音量为 0 时直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
