package overlay

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/milk9111/playerbox/overlay"

type rendererMetrics struct {
	markers  metric.Int64Counter
	segments metric.Int64Counter
	dropped  metric.Int64Counter
}

func newRendererMetrics() *rendererMetrics {
	meter := otel.Meter(meterName)
	return &rendererMetrics{
		markers:  counter(meter, "playerbox.markers", "Markers rendered"),
		segments: counter(meter, "playerbox.segments.drawn", "Line segments drawn"),
		dropped:  counter(meter, "playerbox.segments.dropped", "Line segments dropped as off-screen"),
	}
}

func counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit("{count}"))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}
