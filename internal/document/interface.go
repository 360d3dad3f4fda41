package document

import (
	"time"

	"github.com/alexwulf/alloy-configurator/internal/model"
)

// MarkerSink receives the full replacement marker set on every publish
// cycle. The previous set is superseded entirely; the sink owns display.
type MarkerSink interface {
	PublishMarkers(markers []model.Marker)
}

// ComponentListener receives the full replacement component list on every
// publish cycle, along with the wall-clock duration of the parse+extract
// work that produced it. Interactive affordances (inline action lenses,
// structured editing forms) hang off this.
type ComponentListener interface {
	PublishComponents(records []model.ComponentRecord, elapsed time.Duration)
}
