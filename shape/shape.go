// Package shape holds small geometric value types.
package shape

// Rectangle is a plain-data rectangle. Area is derived from the stored
// sides, never stored itself.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns a rectangle with the given sides.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns width times height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
