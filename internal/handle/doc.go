// Package handle infers owner handles from image filename stems.
//
// A handle is an Instagram-style username token embedded in a filename, such
// as "__cool_user_" in "__cool_user_.12345.jpg". The Detector runs an ordered
// chain of extraction strategies (leading token, @-mention, trailing token)
// and returns the first candidate that survives validation: 3-30 characters,
// at least one ASCII letter, and not a reserved camera prefix like IMG or DSC.
// Casing and leading underscore/dot runs are preserved verbatim so the
// resulting directory names mirror the filenames exactly.
//
// Detection is pure and deterministic: the same stem and options always yield
// the same result, and no state is carried between calls.
package handle
