// Package schedule implements the table-interpretation pipeline that turns an
// irregular spreadsheet export into one group's schedule for one date.
//
// The export has no fixed schema: the header row moves between exports, a
// group may occupy more than one column, and dates and time slots are printed
// only on the first row of a block. The pipeline therefore locates the header
// and group columns heuristically, walks rows carrying the current date and
// time forward, cleans and reassembles the matched cell text, and merges the
// result by time slot.
//
// Stages, in order:
//  1. ParseTable: delimiter detection and CSV parsing into ragged rows.
//  2. locateHeader / locateGroupColumns: bounded scans driven by Heuristics.
//  3. walk: carry-forward row walk producing one Item per matched row.
//  4. segment: per-cell line cleanup, boilerplate removal and fragment glue.
//  5. dedupeItems / MergeByTime: duplicate removal and per-slot grouping.
//  6. Format: the final multi-line reply message.
//
// All pattern tables (header labels, boilerplate denylist, glue tags, scan
// windows) live in Heuristics and can be overridden from configuration.
package schedule
