package scenes

import (
	"image/color"

	"github.com/gonewx/starforce/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// ImageSource 按资源 ID 提供贴图
// game.ResourceManager 实现此接口；贴图尚未加载或加载失败时返回 nil
type ImageSource interface {
	GetImage(id string) *ebiten.Image
}

// hudFace HUD 使用的位图字体（7x13），按字号整体缩放
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// hudFaceSize 位图字体的原始像素高度
const hudFaceSize = 13

// EbitenSurface 把渲染系统的绘制指令转换为 Ebitengine 调用
type EbitenSurface struct {
	dst    *ebiten.Image
	images ImageSource
	width  float64
	height float64
}

// NewEbitenSurface 创建绑定到 dst 的画布
// images 可为 nil，此时所有贴图都退化为纯色矩形
func NewEbitenSurface(dst *ebiten.Image, images ImageSource, width, height float64) *EbitenSurface {
	return &EbitenSurface{dst: dst, images: images, width: width, height: height}
}

// Size 返回逻辑画布尺寸
func (s *EbitenSurface) Size() (float64, float64) {
	return s.width, s.height
}

// FillRect 填充矩形
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText 绘制文本，y 为基线
func (s *EbitenSurface) DrawText(str string, x, y, size float64, align systems.TextAlign, c color.Color) {
	scale := size / hudFaceSize
	ox, oy := textOrigin(text.Advance(str, hudFace)*scale, hudFace.Metrics().HAscent*scale, x, y, align)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox, oy)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, hudFace, op)
}

// textOrigin 计算文本左上角位置
//
// 参数:
//   - width: 缩放后的文本宽度
//   - ascent: 缩放后的基线到顶部距离
//   - x, y: 锚点（y 为基线）
//   - align: 水平对齐方式
func textOrigin(width, ascent, x, y float64, align systems.TextAlign) (float64, float64) {
	if align == systems.AlignCenter {
		x -= width / 2
	}
	return x, y - ascent
}

// DrawImage 把贴图缩放到目标矩形
func (s *EbitenSurface) DrawImage(id string, x, y, w, h float64) bool {
	if s.images == nil {
		return false
	}
	img := s.images.GetImage(id)
	if img == nil {
		return false
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
	return true
}
