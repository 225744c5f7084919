// Package metrics counts asset resolutions and routed navigation requests
// with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
	"github.com/serenity-wellness/serenity/pkg/serenity/theme"
)

const namespace = "serenity"

// Collector observes a theme.Selector and a router.Router.
type Collector struct {
	resolutions *prometheus.CounterVec
	navigations *prometheus.CounterVec
}

var (
	_ theme.Observer  = (*Collector)(nil)
	_ router.Observer = (*Collector)(nil)
)

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Asset resolutions by family and fallback outcome.",
		}, []string{"family", "outcome"}),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Routed navigation requests by destination and presentation.",
		}, []string{"screen", "presentation"}),
	}

	for _, col := range []prometheus.Collector{c.resolutions, c.navigations} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Resolved implements theme.Observer.
func (c *Collector) Resolved(key catalog.ResourceKey, _ catalog.AssetHandle, outcome theme.Outcome) {
	c.resolutions.WithLabelValues(string(key.Family), outcome.String()).Inc()
}

// Routed implements router.Observer. Pop requests are counted under the
// screen label "back".
func (c *Collector) Routed(req router.Request) {
	screen := string(req.Screen())
	if req.IsBack() {
		screen = "back"
	}
	c.navigations.WithLabelValues(screen, req.Presentation().String()).Inc()
}

// Resolutions returns the counter for one family and outcome.
func (c *Collector) Resolutions(family catalog.Family, outcome theme.Outcome) prometheus.Counter {
	return c.resolutions.WithLabelValues(string(family), outcome.String())
}

// Navigations returns the counter for one destination and presentation.
func (c *Collector) Navigations(screen router.Screen, p router.Presentation) prometheus.Counter {
	return c.navigations.WithLabelValues(string(screen), p.String())
}
