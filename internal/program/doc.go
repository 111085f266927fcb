// Package program provides the typed model of the SIGGRAPH 2023 conference program.
//
// A Catalog is an ordered list of Sessions, each optionally expanded into SubEvents.
// Every record carries a normalized local date and clock times (fixed UTC-7) and a
// tri-state recorded/streamed Status. The package also holds the pure building blocks
// of the extraction pipeline: timestamp normalization, tag classification and the
// cross-day SeenSet used to keep each session exactly once.
package program
