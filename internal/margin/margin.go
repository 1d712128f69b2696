// Package margin keeps the line-number margin of an edit surface sized to
// the largest line number in the document.
package margin

// Surface is the part of the edit surface the policy reads and drives.
type Surface interface {
	LineCount() int
	CharWidth() float32
	SetMarginWidth(width float32)
}

// Digits returns the number of decimal digits in n. Values below 1 count as 1.
func Digits(n int) int {
	if n < 1 {
		n = 1
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// ComputeWidth returns the pixel width needed to show lineCount with two
// characters of padding.
func ComputeWidth(lineCount int, charWidth float32) float32 {
	return charWidth * float32(Digits(lineCount)+2)
}

// Policy owns the margin visibility flag and applies the derived width.
type Policy struct {
	surface     Surface
	visible     bool
	placeholder float32
}

// NewPolicy creates a hidden margin policy for surface. placeholder is the
// width applied for the instant between showing and the first recompute.
func NewPolicy(surface Surface, placeholder float32) *Policy {
	p := &Policy{surface: surface, placeholder: placeholder}
	surface.SetMarginWidth(0)
	return p
}

// Visible reports whether the margin is shown.
func (p *Policy) Visible() bool {
	return p.visible
}

// SetVisible shows or hides the margin.
func (p *Policy) SetVisible(visible bool) {
	if !visible {
		p.visible = false
		p.surface.SetMarginWidth(0)
		return
	}

	if !p.visible {
		p.visible = true
		p.surface.SetMarginWidth(p.placeholder)
	}
	p.apply()
}

// Toggle flips the margin visibility and returns the new state.
func (p *Policy) Toggle() bool {
	p.SetVisible(!p.visible)
	return p.visible
}

// OnLineCountChanged recomputes the width if the margin is shown.
func (p *Policy) OnLineCountChanged() {
	if p.visible {
		p.apply()
	}
}

// OnFontChanged recomputes the width if the margin is shown.
func (p *Policy) OnFontChanged() {
	if p.visible {
		p.apply()
	}
}

func (p *Policy) apply() {
	p.surface.SetMarginWidth(ComputeWidth(p.surface.LineCount(), p.surface.CharWidth()))
}
