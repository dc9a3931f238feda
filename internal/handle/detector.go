package handle

import "unicode"

const (
	minHandleLen = 3
	maxHandleLen = 30
)

// Strategy identifies which extraction strategy produced a handle.
type Strategy int

const (
	// StrategyLeading extracted the handle from the start of the stem.
	StrategyLeading Strategy = iota
	// StrategyAt extracted the handle from an @-mention anywhere in the stem.
	StrategyAt
	// StrategyTrailing extracted the handle from the end of the stem.
	StrategyTrailing
)

func (s Strategy) String() string {
	switch s {
	case StrategyLeading:
		return "leading"
	case StrategyAt:
		return "at-mention"
	case StrategyTrailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// Options configures a Detector.
type Options struct {
	// StrictStart restricts inference to the leading strategy; no fallbacks
	// are attempted when it fails.
	StrictStart bool
	// AllowTrailing enables the trailing-token fallback.
	AllowTrailing bool
	// Prefixes is the reserved camera-prefix table. Nil selects the default
	// table.
	Prefixes *ReservedPrefixes
}

// Result carries a validated handle and the strategy that found it.
type Result struct {
	Handle   string
	Strategy Strategy
}

// Detector extracts owner handles from filename stems. It is immutable after
// construction.
type Detector struct {
	strictStart   bool
	allowTrailing bool
	prefixes      *ReservedPrefixes
}

// NewDetector builds a detector from the provided options.
func NewDetector(opts Options) *Detector {
	prefixes := opts.Prefixes
	if prefixes == nil {
		prefixes = DefaultReservedPrefixes()
	}
	return &Detector{
		strictStart:   opts.StrictStart,
		allowTrailing: opts.AllowTrailing,
		prefixes:      prefixes,
	}
}

// Infer runs the strategy chain against a filename stem and returns the first
// valid handle. The chain is strictly ordered and short-circuits: a leading
// token always wins, the @-mention fallback runs only when the leading
// strategy fails, and the trailing fallback runs last. The second return
// value is false when no strategy yields a valid handle; such files are left
// untouched by callers.
func (d *Detector) Infer(stem string) (Result, bool) {
	if token, ok := d.leading(stem); ok {
		return Result{Handle: token, Strategy: StrategyLeading}, true
	}
	if d.strictStart {
		return Result{}, false
	}
	if token, ok := d.atMention(stem); ok {
		return Result{Handle: token, Strategy: StrategyAt}, true
	}
	if d.allowTrailing {
		if token, ok := d.trailing(stem); ok {
			return Result{Handle: token, Strategy: StrategyTrailing}, true
		}
	}
	return Result{}, false
}

// leading extracts a token anchored at the start of the stem. Decorative junk
// before the first token character is skipped, a single introducing "@" is
// dropped, and accumulation stops at the first hard separator or at the
// 30-character cap. Leading underscore/dot runs survive because they are
// token characters themselves.
func (d *Detector) leading(stem string) (string, bool) {
	runes := []rune(stem)

	start := 0
	for start < len(runes) && !isTokenRune(runes[start]) && runes[start] != '@' {
		start++
	}
	runes = runes[start:]
	if len(runes) == 0 {
		return "", false
	}
	if runes[0] == '@' {
		runes = runes[1:]
	}

	token := make([]rune, 0, maxHandleLen)
	for _, r := range runes {
		if !isTokenRune(r) {
			break
		}
		token = append(token, r)
		if len(token) >= maxHandleLen {
			break
		}
	}

	return d.validate(trimNumericTail(string(token)))
}

// atMention extracts the token after the first "@" that introduces at least
// three token characters. Only that single candidate is considered; when it
// fails validation the strategy fails rather than hunting for later mentions.
func (d *Detector) atMention(stem string) (string, bool) {
	runes := []rune(stem)
	for i, r := range runes {
		if r != '@' {
			continue
		}
		end := i + 1
		for end < len(runes) && end-(i+1) < maxHandleLen && isTokenRune(runes[end]) {
			end++
		}
		if end-(i+1) < minHandleLen {
			continue
		}
		return d.validate(trimNumericTail(string(runes[i+1 : end])))
	}
	return "", false
}

// trailing extracts the token that sits at the effective end of the stem,
// where "effective end" allows decoration characters and a date/numeric tail
// after the token. The scan is leftmost-first with greedy token runs, so the
// earliest qualifying token is the single candidate.
func (d *Detector) trailing(stem string) (string, bool) {
	runes := []rune(stem)
	for i := 0; i < len(runes); i++ {
		if !isTokenRune(runes[i]) {
			continue
		}
		end := i
		for end < len(runes) && end-i < maxHandleLen && isTokenRune(runes[end]) {
			end++
		}
		for e := end; e >= i+minHandleLen; e-- {
			if isTailRemainder(string(runes[e:])) {
				return d.validate(trimNumericTail(string(runes[i:e])))
			}
		}
	}
	return "", false
}

// validate applies the handle invariants: rune length within [3,30], at least
// one ASCII letter, and not a reserved camera prefix. The token is returned
// verbatim; casing is never normalized.
func (d *Detector) validate(token string) (string, bool) {
	length := len([]rune(token))
	if length < minHandleLen || length > maxHandleLen {
		return "", false
	}
	if !hasLetter(token) {
		return "", false
	}
	if d.prefixes.Matches(token) {
		return "", false
	}
	return token, true
}

// isTokenRune reports whether r can appear inside a handle. Combining marks
// count so decomposed spellings tokenize the same as their composed forms.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_' || r == '.'
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
