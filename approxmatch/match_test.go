package approxmatch

import "testing"

func TestMatchExact(t *testing.T) {
	if !Match("hello world", "world", 0) {
		t.Error("expected exact substring match with k=0")
	}
}

func TestMatchNoOccurrenceExceedsBudget(t *testing.T) {
	if Match("hello world", "xyz", 0) {
		t.Error("expected no match for unrelated pattern with k=0")
	}
}

func TestMatchWithinEditBudget(t *testing.T) {
	// "wrold" is "world" with two adjacent letters swapped: one substitution
	// plus one more, a Levenshtein distance of 2 from "world".
	if !Match("hello wrold", "world", 2) {
		t.Error("expected match within edit budget 2")
	}
	if Match("hello wrold", "world", 0) {
		t.Error("expected no exact match for a misspelled substring")
	}
}

func TestMatchEmptyPatternAlwaysMatches(t *testing.T) {
	if !Match("anything", "", 0) {
		t.Error("expected empty pattern to match trivially")
	}
}

func TestMatchEmptyTextRequiresBudgetCoveringPattern(t *testing.T) {
	if Match("", "abc", 2) {
		t.Error("expected empty text to require k >= len(pattern)")
	}
	if !Match("", "abc", 3) {
		t.Error("expected empty text to match when k >= len(pattern)")
	}
}

func TestMatchCanStartAnywhereInText(t *testing.T) {
	if !Match("xxxxxworldxxxxx", "world", 0) {
		t.Error("expected substring match regardless of surrounding text")
	}
}
