package ui

import (
	"testing"
)

func TestFilterOptions_EmptyQueryKeepsOrder(t *testing.T) {
	options := []string{"banana", "apple", "cherry"}
	got := filterOptions("", options)
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("filterOptions = %v, want original order", got)
	}
	got = filterOptions("   ", options)
	if len(got) != 3 {
		t.Errorf("blank query should keep all options, got %v", got)
	}
}

func TestFilterOptions_Narrows(t *testing.T) {
	options := []string{
		"DM  Bob        | DM_1",
		"DM  Carol      | DM_2",
		"SP  Team Chat  | Space_1",
	}
	got := filterOptions("carol", options)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("filterOptions(carol) = %v, want [1]", got)
	}

	if got := filterOptions("zzzzzz", options); len(got) != 0 {
		t.Errorf("no-match query should yield nothing, got %v", got)
	}
}

func TestFilterOptions_Subsequence(t *testing.T) {
	options := []string{"Team Chat", "Tech Meetup"}
	got := filterOptions("tch", options)
	if len(got) == 0 {
		t.Fatal("subsequence query should match")
	}
	for _, i := range got {
		if i < 0 || i >= len(options) {
			t.Errorf("index %d out of range", i)
		}
	}
}

func TestParsePagerCommand(t *testing.T) {
	// sh exists everywhere these tests run
	p, ok := parsePagerCommand("sh -c cat")
	if !ok {
		t.Fatal("expected sh to resolve")
	}
	if p.Path != "sh" || len(p.Args) != 2 || p.Args[0] != "-c" {
		t.Errorf("parsed = %+v", p)
	}

	if _, ok := parsePagerCommand(""); ok {
		t.Error("empty value should not resolve")
	}
	if _, ok := parsePagerCommand("definitely-not-a-binary-xyz"); ok {
		t.Error("missing binary should not resolve")
	}
}

func TestSelectorModel_Filtering(t *testing.T) {
	options := []string{"DM  Bob | DM_1", "SP  Ops | Space_1"}
	m := newSelectorModel(options, "Select Chat: ")
	if len(m.filtered) != 2 {
		t.Errorf("initial filtered = %v, want all", m.filtered)
	}

	m.input.SetValue("ops")
	m.filtered = filterOptions(m.input.Value(), m.options)
	m.cursor = 0
	if len(m.filtered) != 1 || m.options[m.filtered[0]] != options[1] {
		t.Errorf("filtered = %v", m.filtered)
	}
}
