package systems

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

// newTestRand 返回固定种子的随机源，保证测试可复现
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// newTestRun 创建第 1 关的初始状态
func newTestRun(t *testing.T, cfg *config.GameConfig) *game.RunState {
	t.Helper()
	return game.NewRunState(cfg, newTestRand())
}

// recordingSounds 记录所有音频调用
type recordingSounds struct {
	sounds []string
	music  []string
	stops  int
}

func (r *recordingSounds) PlaySound(id string) bool {
	r.sounds = append(r.sounds, id)
	return true
}

func (r *recordingSounds) PlayMusic(id string) bool {
	r.music = append(r.music, id)
	return true
}

func (r *recordingSounds) StopMusic() {
	r.stops++
}

func (r *recordingSounds) count(id string) int {
	n := 0
	for _, s := range r.sounds {
		if s == id {
			n++
		}
	}
	return n
}

// memoryScores 内存最高分存储
type memoryScores struct {
	high  int
	saves []int
	err   error
}

func (m *memoryScores) LoadHighScore() int {
	return m.high
}

func (m *memoryScores) SaveHighScore(score, stage int) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.saves = append(m.saves, score)
	if score <= m.high {
		return false, nil
	}
	m.high = score
	return true, nil
}

type drawnRect struct {
	x, y, w, h float64
	c          color.Color
}

type drawnText struct {
	s     string
	x, y  float64
	size  float64
	align TextAlign
}

// recordingSurface 记录绘制调用的 Surface
// images 中列出的贴图视为可用
type recordingSurface struct {
	w, h   float64
	images map[string]bool

	rects     []drawnRect
	texts     []drawnText
	imageCall []string
}

func newRecordingSurface(images ...string) *recordingSurface {
	s := &recordingSurface{w: config.GameWindowWidth, h: config.GameWindowHeight, images: map[string]bool{}}
	for _, id := range images {
		s.images[id] = true
	}
	return s
}

func (s *recordingSurface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.rects = append(s.rects, drawnRect{x, y, w, h, c})
}

func (s *recordingSurface) DrawText(str string, x, y, size float64, align TextAlign, c color.Color) {
	s.texts = append(s.texts, drawnText{str, x, y, size, align})
}

func (s *recordingSurface) DrawImage(id string, x, y, w, h float64) bool {
	s.imageCall = append(s.imageCall, id)
	return s.images[id]
}

func (s *recordingSurface) hasText(substr string) bool {
	for _, t := range s.texts {
		if strings.Contains(t.s, substr) {
			return true
		}
	}
	return false
}

func (s *recordingSurface) rectsWithColor(c color.Color) []drawnRect {
	var out []drawnRect
	for _, r := range s.rects {
		if r.c == c {
			out = append(out, r)
		}
	}
	return out
}

// newTestFlow 创建使用模拟时钟和内存存储的游戏流程
func newTestFlow(t *testing.T, cfg *config.GameConfig) (*GameFlowSystem, *game.MockClock, *recordingSounds, *memoryScores) {
	t.Helper()
	clock := game.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	sounds := &recordingSounds{}
	scores := &memoryScores{}
	fs := NewGameFlowSystem(cfg, GameFlowOptions{
		Clock:   clock,
		Sounds:  sounds,
		Scores:  scores,
		NewRand: newTestRand,
	})
	return fs, clock, sounds, scores
}
