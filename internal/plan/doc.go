// Package plan groups scanned files by inferred handle and turns qualifying
// groups into concrete move plans.
//
// Grouping keys are NFC-normalized so the decomposed spellings macOS produces
// for accented filenames land in the same group as their composed
// counterparts; the destination directory still uses the first-seen verbatim
// handle. Groups below the configured minimum count produce no plan entries,
// leaving their files in place.
package plan
