package cursor

import "testing"

func TestWithDefaults(t *testing.T) {
	got := withDefaults(Config{})

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"size", got.Size, 20.0},
		{"color", got.Color, "#000000"},
		{"opacity", got.Opacity, 0.5},
		{"speed", got.Speed, 0.3},
		{"outline_width", got.OutlineWidth, 2.0},
		{"center_dot_size", got.CenterDotSize, 3.0},
		{"follow", got.Follow, FollowLerp},
		{"spring_frequency", got.SpringFrequency, 6.0},
		{"spring_damping", got.SpringDamping, 0.9},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("default %s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestDefaultsLeaveExplicitValues(t *testing.T) {
	got := withDefaults(Config{Size: 64, Speed: 0.05, Color: "tomato"})
	if got.Size != 64 || got.Speed != 0.05 || got.Color != "tomato" {
		t.Fatalf("explicit values were overwritten: %+v", got)
	}
}

func TestOutOfRangeValuesAreAccepted(t *testing.T) {
	// No validation by design: odd numbers produce odd visuals, not
	// errors.
	got := withDefaults(Config{Opacity: 4, Speed: -2})
	if got.Opacity != 4 || got.Speed != -2 {
		t.Fatalf("out-of-range values were rejected: %+v", got)
	}
}

func TestMergeCarriesPriorValues(t *testing.T) {
	base := withDefaults(Config{Color: "#112233", Size: 30})

	size := 44.0
	got := merge(base, Patch{Size: &size})

	if got.Size != 44 {
		t.Fatalf("patched size = %v, want 44", got.Size)
	}
	if got.Color != "#112233" {
		t.Fatalf("unpatched color = %q, want carried forward", got.Color)
	}
	if got.Speed != 0.3 {
		t.Fatalf("unpatched speed = %v, want default 0.3", got.Speed)
	}
}

func TestMergeZeroLandsOnDefault(t *testing.T) {
	base := withDefaults(Config{Size: 30})
	zero := 0.0
	got := merge(base, Patch{Size: &zero})
	if got.Size != 20 {
		t.Fatalf("size patched to zero = %v, want re-defaulted 20", got.Size)
	}
}

func TestMergeReplacesHoverEffectWholesale(t *testing.T) {
	op := 0.7
	base := withDefaults(Config{HoverEffect: &HoverEffect{Color: "#ff0000", Opacity: &op}})
	got := merge(base, Patch{HoverEffect: &HoverEffect{Scale: 3}})

	if got.HoverEffect == nil {
		t.Fatalf("hover effect dropped")
	}
	if got.HoverEffect.Color != "" || got.HoverEffect.Opacity != nil || got.HoverEffect.Scale != 3 {
		t.Fatalf("hover effect not replaced wholesale: %+v", got.HoverEffect)
	}
}

func TestStructural(t *testing.T) {
	base := withDefaults(Config{})

	cases := []struct {
		name  string
		patch Patch
		want  bool
	}{
		{"outline_toggle", Patch{Outline: boolPtr(true)}, true},
		{"center_dot_toggle", Patch{CenterDot: boolPtr(true)}, true},
		{"hide_cursor_toggle", Patch{HideNativeCursor: boolPtr(true)}, true},
		{"color_change", Patch{Color: strPtr("#ff0000")}, false},
		{"size_change", Patch{Size: floatPtr(64)}, false},
		{"speed_change", Patch{Speed: floatPtr(0.1)}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next := merge(base, c.patch)
			if got := structural(base, next); got != c.want {
				t.Fatalf("structural = %v, want %v", got, c.want)
			}
		})
	}
}

func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
