package handle_test

import (
	"strings"
	"testing"

	"handlesort/internal/handle"
)

func defaultDetector() *handle.Detector {
	return handle.NewDetector(handle.Options{AllowTrailing: true})
}

func TestInferLeadingPreservesCasingAndPunctuation(t *testing.T) {
	tests := []struct {
		stem string
		want string
	}{
		{"__cool_user_.12345", "__cool_user_"},
		{"__zzz___oo0", "__zzz___oo0"},
		{"CoolUser_99999", "CoolUser"},
		{"nice.user-extra stuff", "nice.user"},
		{"my_handle_20250905", "my_handle"},
		{"some.artist-2025-09-05", "some.artist"},
		{"user2025", "user"},
		{"abc123", "abc123"},
		{"-- __cool_user (edit)", "__cool_user"},
		{"@cool_user 0001", "cool_user"},
	}

	detector := defaultDetector()
	for _, tc := range tests {
		result, ok := detector.Infer(tc.stem)
		if !ok {
			t.Errorf("Infer(%q) found no handle, want %q", tc.stem, tc.want)
			continue
		}
		if result.Handle != tc.want {
			t.Errorf("Infer(%q) = %q, want %q", tc.stem, result.Handle, tc.want)
		}
		if result.Strategy != handle.StrategyLeading {
			t.Errorf("Infer(%q) used %s, want leading", tc.stem, result.Strategy)
		}
	}
}

func TestInferRejectsInvalidTokens(t *testing.T) {
	tests := []struct {
		name string
		stem string
	}{
		{"camera prefix exact", "IMG_4321"},
		{"camera prefix lowercase", "dsc00123"},
		{"camera prefix with word", "photo_by_me"},
		{"screenshot", "Screenshot_20250101-101010"},
		{"too short", "ab"},
		{"punctuation only", "____"},
		{"digits only", "123456789"},
		{"empty", ""},
	}

	detector := defaultDetector()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result, ok := detector.Infer(tc.stem); ok {
				t.Fatalf("Infer(%q) = %q via %s, want no handle", tc.stem, result.Handle, result.Strategy)
			}
		})
	}
}

func TestInferCameraPrefixNeedsDelimiter(t *testing.T) {
	detector := defaultDetector()

	// A reserved prefix followed directly by more letters is not a camera name.
	result, ok := detector.Infer("imgmagic")
	if !ok || result.Handle != "imgmagic" {
		t.Fatalf("Infer(imgmagic) = %q, %t; want imgmagic via leading", result.Handle, ok)
	}

	if result, ok := detector.Infer("img_magic"); ok {
		t.Fatalf("Infer(img_magic) = %q, want no handle", result.Handle)
	}
}

func TestInferAtMentionFallback(t *testing.T) {
	detector := defaultDetector()

	result, ok := detector.Infer("photo_by_@some_artist")
	if !ok {
		t.Fatal("expected @-mention fallback to find a handle")
	}
	if result.Handle != "some_artist" {
		t.Fatalf("handle = %q, want some_artist", result.Handle)
	}
	if result.Strategy != handle.StrategyAt {
		t.Fatalf("strategy = %s, want at-mention", result.Strategy)
	}

	// Date tails are trimmed from mention candidates too.
	result, ok = detector.Infer("img shoot @cool_guy_20250101 edit")
	if !ok || result.Handle != "cool_guy" {
		t.Fatalf("Infer mention with tail = %q, %t; want cool_guy", result.Handle, ok)
	}
}

func TestInferTrailingFallback(t *testing.T) {
	detector := defaultDetector()

	result, ok := detector.Infer("IMG 1234 - nice_user 20250101")
	if !ok {
		t.Fatal("expected trailing fallback to find a handle")
	}
	if result.Handle != "nice_user" {
		t.Fatalf("handle = %q, want nice_user", result.Handle)
	}
	if result.Strategy != handle.StrategyTrailing {
		t.Fatalf("strategy = %s, want trailing", result.Strategy)
	}
}

func TestInferStrictStartDisablesFallbacks(t *testing.T) {
	detector := handle.NewDetector(handle.Options{StrictStart: true, AllowTrailing: true})

	if result, ok := detector.Infer("photo_by_@some_artist"); ok {
		t.Fatalf("strict start returned %q via %s, want no handle", result.Handle, result.Strategy)
	}
	if result, ok := detector.Infer("IMG 1234 - nice_user 20250101"); ok {
		t.Fatalf("strict start returned %q via %s, want no handle", result.Handle, result.Strategy)
	}

	// The leading strategy itself still works.
	result, ok := detector.Infer("__cool_user_.12345")
	if !ok || result.Handle != "__cool_user_" {
		t.Fatalf("strict start leading = %q, %t; want __cool_user_", result.Handle, ok)
	}
}

func TestInferNoTrailingDisablesTrailingOnly(t *testing.T) {
	detector := handle.NewDetector(handle.Options{AllowTrailing: false})

	if result, ok := detector.Infer("IMG 1234 - nice_user 20250101"); ok {
		t.Fatalf("trailing disabled returned %q via %s, want no handle", result.Handle, result.Strategy)
	}

	// The @-mention fallback stays available.
	result, ok := detector.Infer("photo_by_@some_artist")
	if !ok || result.Strategy != handle.StrategyAt {
		t.Fatalf("expected at-mention fallback, got %q, %t", result.Handle, ok)
	}
}

func TestInferCapsHandleLength(t *testing.T) {
	detector := defaultDetector()

	stem := strings.Repeat("a", 45)
	result, ok := detector.Infer(stem)
	if !ok {
		t.Fatal("expected a handle for a long run")
	}
	if len(result.Handle) != 30 {
		t.Fatalf("handle length = %d, want 30", len(result.Handle))
	}
}

func TestInferIsDeterministic(t *testing.T) {
	detector := defaultDetector()

	for i := 0; i < 3; i++ {
		result, ok := detector.Infer("party_pics_nice_user_20250905")
		if !ok || result.Handle != "party_pics_nice_user" {
			t.Fatalf("run %d: got %q, %t; want party_pics_nice_user", i, result.Handle, ok)
		}
	}
}

func TestInferCustomPrefixTable(t *testing.T) {
	detector := handle.NewDetector(handle.Options{
		AllowTrailing: true,
		Prefixes:      handle.NewReservedPrefixes([]string{"gopro"}),
	})

	if result, ok := detector.Infer("GoPro_20240101"); ok {
		t.Fatalf("custom prefix returned %q, want no handle", result.Handle)
	}

	// The built-in table no longer applies.
	result, ok := detector.Infer("IMG_beach_trip")
	if !ok || result.Handle != "IMG_beach_trip" {
		t.Fatalf("Infer(IMG_beach_trip) = %q, %t; want IMG_beach_trip", result.Handle, ok)
	}
}
