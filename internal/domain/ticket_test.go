package domain

import (
	"strings"
	"testing"
)

func TestPriorityForID_Partition(t *testing.T) {
	t.Parallel()

	cases := map[int]Priority{
		0: PriorityLow,
		1: PriorityMedium,
		2: PriorityHigh,
		3: PriorityLow,
		4: PriorityMedium,
		5: PriorityHigh,
	}
	for id, want := range cases {
		if got := PriorityForID(id); got != want {
			t.Errorf("PriorityForID(%d) = %q, want %q", id, got, want)
		}
	}
}

func TestPriorityForID_Periodicity(t *testing.T) {
	t.Parallel()

	for id := -9; id < 300; id++ {
		if PriorityForID(id) != PriorityForID(id+3) {
			t.Fatalf("PriorityForID not periodic at id %d", id)
		}
	}
}

func TestPriorityForID_NegativeIDs(t *testing.T) {
	t.Parallel()

	if got := PriorityForID(-1); got != PriorityHigh {
		t.Errorf("PriorityForID(-1) = %q, want %q", got, PriorityHigh)
	}
	if got := PriorityForID(-3); got != PriorityLow {
		t.Errorf("PriorityForID(-3) = %q, want %q", got, PriorityLow)
	}
}

func TestStatusForCompleted(t *testing.T) {
	t.Parallel()

	if got := StatusForCompleted(true); got != StatusClosed {
		t.Errorf("StatusForCompleted(true) = %q, want %q", got, StatusClosed)
	}
	if got := StatusForCompleted(false); got != StatusOpen {
		t.Errorf("StatusForCompleted(false) = %q, want %q", got, StatusOpen)
	}
}

func TestTruncateDescription(t *testing.T) {
	t.Parallel()

	short := "water the plants"
	if got := TruncateDescription(short); got != short {
		t.Errorf("short text changed: %q", got)
	}

	exact := strings.Repeat("a", DescriptionLimit)
	if got := TruncateDescription(exact); got != exact {
		t.Errorf("exact-limit text changed, len %d", len(got))
	}

	long := strings.Repeat("ab", DescriptionLimit)
	got := TruncateDescription(long)
	if len([]rune(got)) != DescriptionLimit {
		t.Errorf("len = %d, want %d", len([]rune(got)), DescriptionLimit)
	}
	if !strings.HasPrefix(long, got) {
		t.Error("truncated text is not a prefix of the original")
	}

	// Multi-byte runes must not be split mid-sequence.
	unicode := strings.Repeat("é", DescriptionLimit+5)
	got = TruncateDescription(unicode)
	if len([]rune(got)) != DescriptionLimit {
		t.Errorf("unicode len = %d runes, want %d", len([]rune(got)), DescriptionLimit)
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	if _, err := ParseStatus("open"); err != nil {
		t.Errorf("ParseStatus(open) unexpected error: %v", err)
	}
	if _, err := ParseStatus("closed"); err != nil {
		t.Errorf("ParseStatus(closed) unexpected error: %v", err)
	}
	if _, err := ParseStatus("pending"); err == nil {
		t.Error("ParseStatus(pending) expected error")
	}
	if _, err := ParseStatus("OPEN"); err == nil {
		t.Error("ParseStatus(OPEN) expected error, statuses are lowercase")
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	for _, priority := range Priorities {
		if _, err := ParsePriority(string(priority)); err != nil {
			t.Errorf("ParsePriority(%s) unexpected error: %v", priority, err)
		}
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Error("ParsePriority(urgent) expected error")
	}
}
