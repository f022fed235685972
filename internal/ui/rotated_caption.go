package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// RotatedCaption is a static label drawn bottom-to-top beside a vertical
// slider. The text is rasterized once per SetText and the bitmap reused. Its
// ID is what the slider's aria-labelledby points at.
type RotatedCaption struct {
	ID string

	text   string
	col    color.Color
	img    *canvas.Image
	box    fyne.Size
	hasBox bool
}

// NewRotatedCaption renders text with the current theme colors.
func NewRotatedCaption(id, text string) *RotatedCaption {
	r := &RotatedCaption{ID: id, text: text, col: theme.ForegroundColor()}
	r.img = canvas.NewImageFromImage(r.rasterize())
	r.img.FillMode = canvas.ImageFillContain
	r.applyMinSize()
	return r
}

// CanvasObject exposes the underlying canvas.Image for layout containers.
func (r *RotatedCaption) CanvasObject() fyne.CanvasObject { return r.img }

// Text returns the caption text.
func (r *RotatedCaption) Text() string { return r.text }

// SetText re-rasterizes the caption.
func (r *RotatedCaption) SetText(text string) {
	if text == r.text {
		return
	}
	r.text = text
	r.img.Image = r.rasterize()
	r.applyMinSize()
	r.img.Refresh()
}

// FitInto scales the caption proportionally inside a w x h box.
func (r *RotatedCaption) FitInto(w, h float32) {
	r.box = fyne.NewSize(w, h)
	r.hasBox = true
	r.applyMinSize()
}

func (r *RotatedCaption) applyMinSize() {
	if r.hasBox {
		r.img.SetMinSize(r.box)
		return
	}
	b := r.img.Image.Bounds()
	r.img.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
}

// rasterize draws the text horizontally, then rotates it 90° counter-clockwise.
func (r *RotatedCaption) rasterize() *image.RGBA {
	face := captionFace()
	if closer, ok := face.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	const pad = 8
	d := &font.Drawer{Face: face}
	m := face.Metrics()
	w := max(d.MeasureString(r.text).Ceil()+pad, 2)
	h := max((m.Ascent+m.Descent).Ceil()+pad, 2)

	flat := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = flat
	d.Src = image.NewUniform(color.NRGBAModel.Convert(r.col))
	d.Dot = fixed.P(pad/2, m.Ascent.Ceil()+pad/2)
	d.DrawString(r.text)

	out := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			out.SetRGBA(x, y, flat.RGBAAt(w-1-y, x))
		}
	}
	return out
}

// captionFace loads the theme font at the current scale and falls back to a
// bitmap face when it cannot be parsed.
func captionFace() font.Face {
	size := float64(theme.TextSize())
	if size <= 0 {
		size = 14
	}
	size *= currentScale() * 0.75
	if size < 6 {
		size = 6
	}
	if res := theme.TextFont(); res != nil {
		if data := res.Content(); len(data) > 0 {
			if f, err := opentype.Parse(data); err == nil {
				if face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 96, Hinting: font.HintingFull}); err == nil {
					return face
				}
			}
		}
	}
	return basicfont.Face7x13
}
