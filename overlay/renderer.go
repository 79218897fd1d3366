package overlay

import (
	"context"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	DefaultCrossScale  = 0.5
	DefaultSquareScale = 1.0
	DefaultLineWidth   = 1.0
)

// Options are the marker settings a host passes to the renderer.
type Options struct {
	CrossScale  float64
	SquareScale float64
	DrawCross   bool
	DrawSquare  bool
	LineWidth   float32
}

func DefaultOptions() Options {
	return Options{
		CrossScale:  DefaultCrossScale,
		SquareScale: DefaultSquareScale,
		DrawCross:   true,
		DrawSquare:  true,
		LineWidth:   DefaultLineWidth,
	}
}

// Entity is a tracked party member as seen in one frame.
type Entity struct {
	ID       uint64
	Name     string
	Position mgl64.Vec3
	RoleCode int
}

// Viewer is the locally controlled entity.
type Viewer struct {
	ID       uint64
	Position mgl64.Vec3
}

// MarkerRenderer turns a frame's party snapshot into line draw commands.
// It keeps no state between frames.
type MarkerRenderer struct {
	opts      Options
	projector Projector
	resolve   RoleResolver
	logger    *slog.Logger
	metrics   *rendererMetrics
}

type RendererOption func(*MarkerRenderer)

func WithLogger(l *slog.Logger) RendererOption {
	return func(r *MarkerRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithRoleResolver(fn RoleResolver) RendererOption {
	return func(r *MarkerRenderer) {
		if fn != nil {
			r.resolve = fn
		}
	}
}

func NewMarkerRenderer(opts Options, projector Projector, options ...RendererOption) *MarkerRenderer {
	r := &MarkerRenderer{
		opts:      opts,
		projector: projector,
		resolve:   healerOnly,
		logger:    slog.Default(),
		metrics:   newRendererMetrics(),
	}
	for _, o := range options {
		o(r)
	}
	return r
}

// SetOptions swaps the marker settings, e.g. after a config reload.
func (r *MarkerRenderer) SetOptions(opts Options) {
	r.opts = opts
}

func (r *MarkerRenderer) Options() Options {
	return r.opts
}

// SetProjector swaps the projector. Hosts call this every frame since the
// camera moves.
func (r *MarkerRenderer) SetProjector(p Projector) {
	r.projector = p
}

// RenderFrame draws a marker for every entity except the viewer. A nil viewer
// or projector draws nothing. Unprojectable segments are skipped.
func (r *MarkerRenderer) RenderFrame(entities []Entity, viewer *Viewer, canvas Canvas) {
	if r == nil || canvas == nil {
		return
	}
	if viewer == nil {
		r.logger.Debug("no viewer, skipping frame")
		return
	}
	if r.projector == nil {
		r.logger.Debug("no projector, skipping frame")
		return
	}

	var drawn, dropped int64
	for _, e := range entities {
		if e.ID == viewer.ID {
			continue
		}
		d, x := r.renderEntity(e, viewer, canvas)
		drawn += d
		dropped += x
	}

	r.metrics.segments.Add(context.Background(), drawn)
	if dropped > 0 {
		r.metrics.dropped.Add(context.Background(), dropped)
		r.logger.Debug("dropped off-screen segments", "dropped", dropped, "drawn", drawn)
	}
}

// renderEntity projects the whole marker before drawing any of it, so a
// panicking projector or role resolver costs only this entity's marker.
func (r *MarkerRenderer) renderEntity(e Entity, viewer *Viewer, canvas Canvas) (drawn, dropped int64) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Debug("marker skipped", "entity", e.ID, "panic", p)
			drawn, dropped = 0, 0
		}
	}()

	distance := e.Position.Sub(viewer.Position).Len()
	marker := BuildMarker(e.Position, distance, r.opts)
	role := r.resolve(e.RoleCode)
	col := MarkerColor(role, distance)

	var buf [len(marker.Cross) + len(marker.Square)]Segment
	segs := buf[:0]
	if r.opts.DrawCross {
		segs = append(segs, marker.Cross[:]...)
	}
	if r.opts.DrawSquare {
		segs = append(segs, marker.Square[:]...)
	}
	if len(segs) == 0 {
		return 0, 0
	}

	width := r.opts.LineWidth
	if width <= 0 {
		width = DefaultLineWidth
	}
	var cmds [len(buf)]DrawCommand
	visible := cmds[:0]
	for _, s := range segs {
		from, to, ok := r.projectSegment(s)
		if !ok {
			dropped++
			continue
		}
		visible = append(visible, DrawCommand{From: from, To: to, Color: col, Width: width})
	}

	for _, c := range visible {
		canvas.DrawLine(c.From, c.To, c.Color, c.Width)
	}
	r.metrics.markers.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("role", role.String())))
	return int64(len(visible)), dropped
}

func (r *MarkerRenderer) projectSegment(s Segment) (from, to mgl64.Vec2, ok bool) {
	from, ok = r.projector.Project(s.Start)
	if !ok || !finite(from) {
		return from, to, false
	}
	to, ok = r.projector.Project(s.End)
	if !ok || !finite(to) {
		return from, to, false
	}
	return from, to, true
}
