// Package geom implements the float geometry used by the positioning engine.
//
// All coordinates share one space (typically the viewport). Rects are
// immutable values; every operation returns a new value. Types are
// re-exported through the root floating package for public consumption.
package geom
