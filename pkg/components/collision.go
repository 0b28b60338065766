package components

// Rect 实体的轴对齐包围盒（AABB）
// 坐标为画布坐标，(X, Y) 为左上角
type Rect struct {
	X      float64
	Y      float64
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素）
}

// Intersects 判断两个包围盒是否重叠
// 仅接触边缘不算重叠
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Center 返回包围盒中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Bottom 返回包围盒下边缘 Y 坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}
