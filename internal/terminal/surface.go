// Package terminal 终端前端：把逻辑画布绘制到 tcell 屏幕，并把按键事件转换为每 tick 的输入
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/starforce/pkg/systems"
)

// DefaultSprites 终端下各贴图对应的字符和颜色
var DefaultSprites = map[string]Sprite{
	"player": {Glyph: '▲', Color: tcell.ColorDeepSkyBlue},
	"enemy1": {Glyph: '▼', Color: tcell.ColorCrimson},
	"enemy2": {Glyph: '◆', Color: tcell.ColorDarkOrange},
}

// Sprite 用单个字符表示的贴图
type Sprite struct {
	Glyph rune
	Color tcell.Color
}

// Surface 基于 tcell 的 systems.Surface 实现
//
// 逻辑画布按比例缩放到终端的行列；小于一个字符格的矩形绘制为字符，
// 其余矩形用背景色填充。终端无法做半透明混合，半透明遮罩会被忽略。
type Surface struct {
	screen  tcell.Screen
	width   float64
	height  float64
	sprites map[string]Sprite
}

// NewSurface 创建终端画布
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - width, height: 逻辑画布尺寸（如 800x600）
//   - sprites: 贴图字符表，为 nil 时使用 DefaultSprites
func NewSurface(screen tcell.Screen, width, height float64, sprites map[string]Sprite) *Surface {
	if sprites == nil {
		sprites = DefaultSprites
	}
	return &Surface{screen: screen, width: width, height: height, sprites: sprites}
}

// Size 返回逻辑画布尺寸
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// cellSize 返回一个字符格对应的逻辑像素尺寸
func (s *Surface) cellSize() (float64, float64) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return s.width, s.height
	}
	return s.width / float64(cols), s.height / float64(rows)
}

// cellRange 把逻辑矩形映射到字符格范围 [c0, c1) x [r0, r1)，超出屏幕的部分被裁掉
func (s *Surface) cellRange(x, y, w, h float64) (c0, r0, c1, r1 int) {
	cw, ch := s.cellSize()
	cols, rows := s.screen.Size()

	c0 = int(math.Floor(x / cw))
	r0 = int(math.Floor(y / ch))
	c1 = int(math.Ceil((x + w) / cw))
	r1 = int(math.Ceil((y + h) / ch))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	c0, c1 = max(c0, 0), min(c1, cols)
	r0, r1 = max(r0, 0), min(r1, rows)
	return c0, r0, c1, r1
}

// FillRect 填充矩形
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	tc, alpha := toTcell(c)
	if alpha < 0xff {
		return
	}

	cw, ch := s.cellSize()
	c0, r0, c1, r1 := s.cellRange(x, y, w, h)

	if w < cw && h < ch {
		glyph := '.'
		if h > w*1.5 {
			glyph = '|'
		}
		if c0 < c1 && r0 < r1 {
			s.setGlyph(c0, r0, glyph, tc)
		}
		return
	}

	st := tcell.StyleDefault.Background(tc).Foreground(tc)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.screen.SetContent(col, row, ' ', nil, st)
		}
	}
}

// DrawText 绘制单行文本，y 为基线
func (s *Surface) DrawText(str string, x, y, size float64, align systems.TextAlign, c color.Color) {
	tc, _ := toTcell(c)
	cw, ch := s.cellSize()
	cols, rows := s.screen.Size()

	runes := []rune(str)
	col := int(x / cw)
	if align == systems.AlignCenter {
		col -= len(runes) / 2
	}
	// 基线上方半个字号处大致是文本的视觉中心
	row := int((y - size/2) / ch)
	if row < 0 || row >= rows {
		return
	}

	for i, r := range runes {
		if cx := col + i; cx >= 0 && cx < cols {
			s.setGlyph(cx, row, r, tc)
		}
	}
}

// DrawImage 用贴图字符填充矩形，未登记的贴图返回 false
func (s *Surface) DrawImage(id string, x, y, w, h float64) bool {
	sp, ok := s.sprites[id]
	if !ok {
		return false
	}
	c0, r0, c1, r1 := s.cellRange(x, y, w, h)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.setGlyph(col, row, sp.Glyph, sp.Color)
		}
	}
	return true
}

// setGlyph 写入字符，保留原有背景色
func (s *Surface) setGlyph(col, row int, r rune, fg tcell.Color) {
	_, _, st, _ := s.screen.GetContent(col, row)
	s.screen.SetContent(col, row, r, nil, st.Foreground(fg))
}

// toTcell 转换为 tcell 颜色，同时返回 8 位 alpha
func toTcell(c color.Color) (tcell.Color, uint8) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return tcell.ColorBlack, 0
	}
	// RGBA() 返回预乘 alpha 的 16 位分量
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)), uint8(a >> 8)
}
