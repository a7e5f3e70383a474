package textwidth

import "testing"

func TestWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"日本語", 6},
		{"a日b", 4},
	}
	for _, c := range cases {
		if got := Width(c.in); got != c.want {
			t.Errorf("Width(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPad(t *testing.T) {
	got := Pad("hi", 5)
	if got != "hi   " {
		t.Errorf("Pad = %q, want %q", got, "hi   ")
	}
	if w := Width(got); w != 5 {
		t.Errorf("padded width = %d, want 5", w)
	}
}

func TestPad_WideChars(t *testing.T) {
	// 日本 occupies 4 columns; padding must account for display width, not runes
	got := Pad("日本", 6)
	if w := Width(got); w != 6 {
		t.Errorf("padded width = %d, want 6", w)
	}
	if got != "日本  " {
		t.Errorf("Pad = %q", got)
	}
}

func TestPad_NoTruncation(t *testing.T) {
	s := "already long enough"
	if got := Pad(s, 5); got != s {
		t.Errorf("Pad should not truncate: got %q", got)
	}
}

func TestPad_Idempotent(t *testing.T) {
	for _, s := range []string{"", "x", "ab", "日本語", "mixed 語 text"} {
		once := Pad(s, 12)
		twice := Pad(once, 12)
		if once != twice {
			t.Errorf("Pad not idempotent for %q: %q vs %q", s, once, twice)
		}
		if Width(s) <= 12 && Width(once) < 12 {
			t.Errorf("Pad(%q, 12) under-shot: width %d", s, Width(once))
		}
	}
}

func TestPadLeft(t *testing.T) {
	got := PadLeft("hi", 5)
	if got != "   hi" {
		t.Errorf("PadLeft = %q, want %q", got, "   hi")
	}
	if got := PadLeft("toolongalready", 5); got != "toolongalready" {
		t.Errorf("PadLeft should not truncate: got %q", got)
	}
}
