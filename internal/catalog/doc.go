// Package catalog drives the per-day session extraction across the conference and
// accumulates the final ordered catalog.
//
// Days are processed strictly in ascending order with one SeenSet shared by the
// whole run, so a session listed on several days is kept once, at the earliest day.
// Any fetch or parse failure aborts the build; no partial catalog is returned.
package catalog
