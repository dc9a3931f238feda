package handle

import (
	"strings"

	"golang.org/x/text/cases"
)

// defaultCameraPrefixes lists tokens that mark device- or app-generated
// filenames. A candidate whose core equals one of these, or starts with one
// followed by a delimiter, is never a handle.
var defaultCameraPrefixes = []string{
	"img", "dsc", "pxl", "vid", "photo", "screenshot", "whatsapp", "signal",
	"snapchat", "instagram", "insta", "fb", "telegram",
}

// ReservedPrefixes is an immutable, case-folded set of camera prefixes built
// once at startup.
type ReservedPrefixes struct {
	prefixes []string
}

// DefaultReservedPrefixes returns the built-in camera prefix table.
func DefaultReservedPrefixes() *ReservedPrefixes {
	return NewReservedPrefixes(defaultCameraPrefixes)
}

// NewReservedPrefixes builds a prefix set from the provided tokens. Empty
// entries are dropped and the remainder is case-folded so matching is
// case-insensitive.
func NewReservedPrefixes(prefixes []string) *ReservedPrefixes {
	folder := cases.Fold()
	folded := make([]string, 0, len(prefixes))
	seen := make(map[string]struct{}, len(prefixes))
	for _, prefix := range prefixes {
		normalized := folder.String(strings.TrimSpace(prefix))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		folded = append(folded, normalized)
	}
	return &ReservedPrefixes{prefixes: folded}
}

// Matches reports whether the token looks like a camera-generated name. The
// token is stripped of surrounding underscore/dot padding and case-folded
// before comparison. A prefix matches only as the exact core or when followed
// by a delimiter ("img_4321" matches, "imgmagic" does not).
func (r *ReservedPrefixes) Matches(token string) bool {
	// Caser transforms are stateful, so build one per call.
	core := cases.Fold().String(strings.Trim(token, "._"))
	if core == "" {
		return false
	}
	for _, prefix := range r.prefixes {
		if core == prefix {
			return true
		}
		if strings.HasPrefix(core, prefix) {
			rest := core[len(prefix):]
			switch rest[0] {
			case '_', '-', '.', ' ':
				return true
			}
		}
	}
	return false
}

// Values returns a copy of the folded prefix table, primarily for display.
func (r *ReservedPrefixes) Values() []string {
	out := make([]string, len(r.prefixes))
	copy(out, r.prefixes)
	return out
}
