package adapter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	svg "github.com/ajstarks/svgo"

	m "github.com/aberke/fractals/internal/model"
)

// svgStep is one animated reveal of a registered path.
type svgStep struct {
	n  int
	at time.Duration
	d  time.Duration
}

// svgPath is the per-handle state of an SVGSurface.
type svgPath struct {
	path    m.Path
	style   m.Style
	initial int
	visible int
	lastEnd time.Duration
	steps   []svgStep
}

type svgText struct {
	at   m.Point
	text string
}

// SVGSurface buffers every call and writes one SVG document on Close,
// rendering each animated reveal as a SMIL stroke-dashoffset animation.
// Time is virtual: a step begins where the previous step of its handle
// ended, and new handles begin at the latest end seen so far, so
// sequential reveals play strictly one after another while branched
// reveals overlap. Extend never sleeps; the pacing lives in the
// document.
type SVGSurface struct {
	mu         sync.Mutex
	out        io.Writer
	w, h       float64
	background string
	precision  int
	now        time.Duration
	paths      []*svgPath
	texts      []svgText
	closed     bool
}

// SVGOption configures an SVGSurface.
type SVGOption func(*SVGSurface)

// WithBackground fills the canvas with a color before any path.
func WithBackground(color string) SVGOption {
	return func(s *SVGSurface) { s.background = color }
}

// WithPrecision sets how many decimals coordinates render with.
func WithPrecision(digits int) SVGOption {
	return func(s *SVGSurface) { s.precision = digits }
}

// NewSVG creates an SVG surface of w by h units writing to out.
func NewSVG(out io.Writer, w, h float64, opts ...SVGOption) *SVGSurface {
	s := &SVGSurface{out: out, w: w, h: h, precision: 2}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Size reports the drawable area.
func (s *SVGSurface) Size() (float64, float64) { return s.w, s.h }

// AddPath registers a path. Its reveal clock starts at the latest step
// end the surface has seen.
func (s *SVGSurface) AddPath(path m.Path, style m.Style) (Handle, error) {
	if err := path.Validate(); err != nil {
		return 0, fmt.Errorf("svg: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, errSurfaceClosed()
	}

	h := Handle(len(s.paths))
	s.paths = append(s.paths, &svgPath{
		path:    append(m.Path(nil), path...),
		style:   style,
		initial: 1,
		visible: 1,
		lastEnd: s.now,
	})

	return h, nil
}

// Extend schedules a reveal step. A step without duration folds into
// the state the document opens with, or into the step preceding it.
func (s *SVGSurface) Extend(h Handle, n int, d time.Duration) error {
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
		return fmt.Errorf("svg: %w", err)
	}

	p.visible = n

	if d <= 0 {
		if len(p.steps) == 0 {
			p.initial = n
		} else {
			p.steps[len(p.steps)-1].n = n
		}

		return nil
	}

	p.steps = append(p.steps, svgStep{n: n, at: p.lastEnd, d: d})
	p.lastEnd += d

	if p.lastEnd > s.now {
		s.now = p.lastEnd
	}

	return nil
}

// Text places a label.
func (s *SVGSurface) Text(at m.Point, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSurfaceClosed()
	}

	s.texts = append(s.texts, svgText{at: at, text: text})

	return nil
}

// Rotate turns the registered path. Lengths are preserved, so steps
// already scheduled stay valid.
func (s *SVGSurface) Rotate(h Handle, angle float64, center m.Point) error {
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
func (s *SVGSurface) Clone(h Handle) (Handle, error) {
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
	s.paths = append(s.paths, &svgPath{
		path:    append(m.Path(nil), p.path...),
		style:   p.style,
		initial: 1,
		visible: 1,
		lastEnd: s.now,
	})

	return nh, nil
}

// Close writes the document.
func (s *SVGSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errSurfaceClosed()
	}

	s.closed = true

	canvas := svg.New(s.out)
	canvas.Start(int(math.Ceil(s.w)), int(math.Ceil(s.h)))

	if s.background != "" {
		canvas.Rect(0, 0, int(math.Ceil(s.w)), int(math.Ceil(s.h)), fmt.Sprintf(`fill="%s"`, s.background))
	}

	for i, p := range s.paths {
		s.writePath(canvas, i, p)
	}

	for _, t := range s.texts {
		canvas.Text(int(math.Round(t.at.X)), int(math.Round(t.at.Y)), t.text,
			`text-anchor="middle"`, `fill="gray"`, `font-family="sans-serif"`)
	}

	canvas.End()

	return nil
}

func (s *SVGSurface) lookup(h Handle) (*svgPath, error) {
	if h < 0 || int(h) >= len(s.paths) {
		return nil, errUnknownHandle(h)
	}

	return s.paths[int(h)], nil
}

// writePath emits one path element. Partially visible or animated
// paths carry the stroke-dasharray trick: the dash and its gap both
// span the full stroke, and the dashoffset hides everything past the
// visible prefix. Each step animates the offset down, frozen at its
// end value.
func (s *SVGSurface) writePath(canvas *svg.SVG, id int, p *svgPath) {
	attrs := []string{
		fmt.Sprintf(`id="p%d"`, id),
		`fill="none"`,
		fmt.Sprintf(`stroke="%s"`, p.style.Stroke),
		fmt.Sprintf(`stroke-width="%s"`, s.coord(p.style.Width)),
	}

	total := p.path.Length()
	partial := total > 0 && (len(p.steps) > 0 || p.visible < len(p.path))

	if partial {
		attrs = append(attrs,
			fmt.Sprintf(`stroke-dasharray="%s"`, s.coord(total)),
			fmt.Sprintf(`stroke-dashoffset="%s"`, s.coord(total-p.path.LengthTo(p.initial))),
		)
	}

	canvas.Path(s.pathData(p.path), attrs...)

	if !partial {
		return
	}

	from := p.path.LengthTo(p.initial)

	for _, step := range p.steps {
		to := p.path.LengthTo(step.n)
		fmt.Fprintf(canvas.Writer,
			"<animate xlink:href=\"#p%d\" attributeName=\"stroke-dashoffset\" from=\"%s\" to=\"%s\" begin=\"%ss\" dur=\"%ss\" fill=\"freeze\" />\n",
			id, s.coord(total-from), s.coord(total-to), seconds(step.at), seconds(step.d))

		from = to
	}
}

func (s *SVGSurface) pathData(path m.Path) string {
	var b strings.Builder

	for _, e := range path {
		switch e.Kind {
		case m.MoveToKind:
			s.writeCommand(&b, "M", e.P0)
		case m.LineToKind:
			s.writeCommand(&b, "L", e.P0)
		case m.QuadToKind:
			s.writeCommand(&b, "Q", e.P0, e.P1)
		case m.CubicToKind:
			s.writeCommand(&b, "C", e.P0, e.P1, e.P2)
		}
	}

	return b.String()
}

func (s *SVGSurface) writeCommand(b *strings.Builder, cmd string, pts ...m.Point) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}

	b.WriteString(cmd)

	for _, pt := range pts {
		b.WriteByte(' ')
		b.WriteString(s.coord(pt.X))
		b.WriteByte(' ')
		b.WriteString(s.coord(pt.Y))
	}
}

func (s *SVGSurface) coord(v float64) string {
	out := strconv.FormatFloat(v, 'f', s.precision, 64)

	// Rotation noise can land just below zero and pick up a sign.
	if out[0] == '-' && strings.Trim(out[1:], "0.") == "" {
		out = out[1:]
	}

	return out
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
