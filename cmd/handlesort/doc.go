// Package main hosts the handlesort CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into organize runs,
// inference previews, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so the heavy lifting
// stays in the internal packages; the root command itself performs the
// organize run so the common case is simply "handlesort <folder>".
package main
