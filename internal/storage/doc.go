// Package storage provides JSON persistence of the session catalog.
//
// The catalog export is indented JSON with a fixed field order, no HTML escaping
// and a trailing newline, so two runs over the same cached pages produce
// byte-identical files that diff cleanly. The default export location is
// src/events.json, where the schedule viewer reads it.
package storage
