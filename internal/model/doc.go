// Package model defines the format-agnostic value types shared by the
// editing pipeline: the structured Block view of one component, the
// ComponentRecord pairing a Block with the syntax node it came from, and
// the positioned Marker records published to the diagnostics surface.
package model
