package adapter

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"
	"strconv"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	m "github.com/aberke/fractals/internal/model"
)

const (
	// subframeLen is how much reveal time one GIF frame covers at most.
	subframeLen = 20 * time.Millisecond

	// maxSubframes caps the frames one Extend emits.
	maxSubframes = 4

	// holdDelay keeps the finished drawing on screen before the GIF
	// loops, in hundredths of a second.
	holdDelay = 200

	// curveFlattenSteps is the polyline resolution curves rasterize at.
	curveFlattenSteps = 8
)

// noHandle marks a frame render with no reveal in flight.
const noHandle Handle = -1

type gifPath struct {
	path    m.Path
	style   m.Style
	visible int
}

type gifText struct {
	at   m.Point
	text string
}

// GIFSurface renders reveals into animated GIF frames: every Extend
// with a duration redraws the whole scene a few times with the active
// path truncated mid-segment, so the stroke grows over the frames.
// Frames are appended in call order; concurrent branches therefore
// animate one step after another rather than overlapping.
type GIFSurface struct {
	mu      sync.Mutex
	out     io.Writer
	w, h    float64
	pw, ph  int
	palette color.Palette
	loop    int
	paths   []*gifPath
	texts   []gifText
	frames  []*image.Paletted
	delays  []int
	closed  bool
}

// GIFOption configures a GIFSurface.
type GIFOption func(*GIFSurface)

// WithPalette replaces the frame palette. Index 0 is the background.
func WithPalette(p color.Palette) GIFOption {
	return func(s *GIFSurface) { s.palette = p }
}

// WithLoop sets the loop count, 0 looping forever.
func WithLoop(n int) GIFOption {
	return func(s *GIFSurface) { s.loop = n }
}

// NewGIF creates a GIF surface of w by h units writing to out. One
// unit maps to one pixel.
func NewGIF(out io.Writer, w, h float64, opts ...GIFOption) *GIFSurface {
	s := &GIFSurface{
		out:     out,
		w:       w,
		h:       h,
		pw:      max(1, int(math.Ceil(w))),
		ph:      max(1, int(math.Ceil(h))),
		palette: defaultPalette(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Size reports the drawable area.
func (s *GIFSurface) Size() (float64, float64) { return s.w, s.h }

// AddPath registers a path. Nothing shows until it is extended.
func (s *GIFSurface) AddPath(path m.Path, style m.Style) (Handle, error) {
	if err := path.Validate(); err != nil {
		return 0, fmt.Errorf("gif: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errSurfaceClosed()
	}

	h := Handle(len(s.paths))
	s.paths = append(s.paths, &gifPath{
		path:    append(m.Path(nil), path...),
		style:   style,
		visible: 1,
	})

	return h, nil
}

// Extend reveals up to n elements of h, spreading the step over up to
// maxSubframes frames whose delays sum to d. Without a duration the
// prefix just moves, showing up in whatever frame comes next.
func (s *GIFSurface) Extend(h Handle, n int, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSurfaceClosed()
	}

	p, err := s.lookup(h)
	if err != nil {
		return err
	}

	if err := checkExtend(p.visible, n, len(p.path)); err != nil {
		return fmt.Errorf("gif: %w", err)
	}

	if d <= 0 {
		p.visible = n

		return nil
	}

	sub := int(d / subframeLen)
	if sub < 1 {
		sub = 1
	}

	if sub > maxSubframes {
		sub = maxSubframes
	}

	delay := centiseconds(d / time.Duration(sub))
	span := n - p.visible

	for k := 1; k <= sub; k++ {
		u := float64(span) * float64(k) / float64(sub)
		whole := p.visible + int(u)
		frac := u - math.Floor(u)

		if k == sub {
			whole, frac = n, 0
		}

		s.frames = append(s.frames, s.renderFrame(h, whole, frac))
		s.delays = append(s.delays, delay)
	}

	p.visible = n

	return nil
}

// Text places a label drawn on every following frame.
func (s *GIFSurface) Text(at m.Point, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSurfaceClosed()
	}

	s.texts = append(s.texts, gifText{at: at, text: text})

	return nil
}

// Rotate turns the registered path of h for all frames still to come.
func (s *GIFSurface) Rotate(h Handle, angle float64, center m.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSurfaceClosed()
	}

	p, err := s.lookup(h)
	if err != nil {
		return err
	}

	p.path = p.path.RotateAbout(angle, center)

	return nil
}

// Clone registers a copy of h's path under a new handle.
func (s *GIFSurface) Clone(h Handle) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errSurfaceClosed()
	}

	p, err := s.lookup(h)
	if err != nil {
		return 0, err
	}

	nh := Handle(len(s.paths))
	s.paths = append(s.paths, &gifPath{
		path:    append(m.Path(nil), p.path...),
		style:   p.style,
		visible: 1,
	})

	return nh, nil
}

// Close appends a final frame of the finished drawing and encodes the
// animation.
func (s *GIFSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSurfaceClosed()
	}

	s.closed = true

	delay := holdDelay
	if len(s.frames) == 0 {
		delay = 100
	}

	s.frames = append(s.frames, s.renderFrame(noHandle, 0, 0))
	s.delays = append(s.delays, delay)

	g := &gif.GIF{Image: s.frames, Delay: s.delays, LoopCount: s.loop}

	if err := gif.EncodeAll(s.out, g); err != nil {
		return fmt.Errorf("gif: encode: %w", err)
	}

	return nil
}

func (s *GIFSurface) lookup(h Handle) (*gifPath, error) {
	if h < 0 || int(h) >= len(s.paths) {
		return nil, errUnknownHandle(h)
	}

	return s.paths[int(h)], nil
}

// renderFrame draws the whole scene. The active handle renders with
// count whole elements plus a frac-truncated next one; every other
// handle renders its current visible prefix.
func (s *GIFSurface) renderFrame(active Handle, count int, frac float64) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, s.pw, s.ph), s.palette)

	for i, p := range s.paths {
		n, f := p.visible, 0.0
		if Handle(i) == active {
			n, f = count, frac
		}

		s.strokePath(img, p, n, f)
	}

	for _, t := range s.texts {
		s.drawText(img, t)
	}

	return img
}

// strokePath rasterizes the visible prefix of one path.
func (s *GIFSurface) strokePath(img *image.Paletted, p *gifPath, count int, frac float64) {
	width := p.style.Width
	if width <= 0 {
		width = 1
	}

	limit := count
	if frac > 0 && count < len(p.path) {
		limit = count + 1
	}

	z := vector.NewRasterizer(s.pw, s.ph)
	pen := m.Point{}
	stroked := false

	for i, e := range p.path[:limit] {
		seg := e
		if i == count {
			seg = e.Truncate(pen, frac)
		}

		if seg.Kind == m.MoveToKind {
			pen = seg.P0
			continue
		}

		start := pen
		for _, pt := range seg.Flatten(start, curveFlattenSteps) {
			strokeQuad(z, start, pt, width)
			stroked = true
			start = pt
		}

		pen = seg.End()
	}

	if !stroked {
		return
	}

	z.Draw(img, img.Bounds(), image.NewUniform(strokeColor(p.style.Stroke)), image.Point{})
}

// strokeQuad fills the rectangle covering segment a-b at the given
// stroke width, extended by half a width on both ends so consecutive
// segments join without gaps.
func strokeQuad(z *vector.Rasterizer, a, b m.Point, width float64) {
	dist := a.Distance(b)
	if dist == 0 {
		return
	}

	half := width / 2
	dir := b.Sub(a).Mul(1 / dist)
	n := m.Pt(-dir.Y, dir.X).Mul(half)

	a = a.Sub(dir.Mul(half))
	b = b.Add(dir.Mul(half))

	z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	z.ClosePath()
}

func (s *GIFSurface) drawText(img *image.Paletted, t gifText) {
	face := basicfont.Face7x13
	x := int(math.Round(t.at.X)) - len(t.text)*face.Advance/2

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(strokeColor("gray")),
		Face: face,
		Dot:  fixed.P(x, int(math.Round(t.at.Y))),
	}
	d.DrawString(t.text)
}

func centiseconds(d time.Duration) int {
	cs := int(math.Round(d.Seconds() * 100))
	if cs < 1 {
		cs = 1
	}

	return cs
}

func defaultPalette() color.Palette {
	return color.Palette{
		color.White,
		color.Black,
		color.RGBA{R: 0xcc, A: 0xff},
		color.RGBA{G: 0x99, A: 0xff},
		color.RGBA{B: 0xcc, A: 0xff},
		color.RGBA{R: 0xff, G: 0x8c, A: 0xff},
		color.RGBA{R: 0x80, B: 0x80, A: 0xff},
		color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
}

// strokeColor resolves a stroke name or #RRGGBB value, defaulting to
// black.
func strokeColor(name string) color.Color {
	if len(name) == 7 && name[0] == '#' {
		if v, err := strconv.ParseUint(name[1:], 16, 32); err == nil {
			return color.RGBA{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: 0xff,
			}
		}
	}

	switch name {
	case "white":
		return color.White
	case "red":
		return color.RGBA{R: 0xcc, A: 0xff}
	case "green":
		return color.RGBA{G: 0x99, A: 0xff}
	case "blue":
		return color.RGBA{B: 0xcc, A: 0xff}
	case "orange":
		return color.RGBA{R: 0xff, G: 0x8c, A: 0xff}
	case "purple":
		return color.RGBA{R: 0x80, B: 0x80, A: 0xff}
	case "gray":
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}

	return color.Black
}
