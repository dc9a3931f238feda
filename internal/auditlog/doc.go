// Package auditlog appends move records to a CSV file.
//
// Each executed or simulated move becomes one row of
// action,handle,src,dst. The file is opened in append mode before any move
// happens so a partially audited run cannot occur; the header row is written
// only when the file is new or empty, and prior rows are never read or
// rewritten.
package auditlog
