package report

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rubytogether/time-card/internal/model"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0h 0m"},
		{30, "0h 30m"},
		{59, "0h 59m"},
		{60, "1h 0m"},
		{90, "1h 30m"},
		{120, "2h 0m"},
		{605, "10h 5m"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "$0.00"},
		{1, "$2.50"},
		{120, "$300.00"},
		{45, "$112.50"},
	}
	for _, tt := range tests {
		if got := Amount(tt.minutes); got != tt.want {
			t.Errorf("Amount(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("word ", 20) // 20 words, 99 chars trimmed

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"short", "hello there", []string{"hello there"}},
		{"exact", strings.Repeat("x", 80), []string{strings.Repeat("x", 80)}},
		{"unbreakable", strings.Repeat("x", 85), []string{strings.Repeat("x", 80), "xxxxx"}},
		{"breaks at whitespace", long, []string{
			strings.TrimSpace(strings.Repeat("word ", 16)),
			strings.TrimSpace(strings.Repeat("word ", 4)),
		}},
		{"keeps newlines", "first\nsecond", []string{"first", "second"}},
		{"trims edges", "  padded  ", []string{"padded"}},
		{"multi-byte runes", strings.Repeat("五", 85), []string{
			strings.Repeat("五", 80),
			strings.Repeat("五", 5),
		}},
		{"multi-byte with spaces", strings.Repeat("五", 79) + " 五五", []string{
			strings.Repeat("五", 79),
			"五五",
		}},
	}
	for _, tt := range tests {
		got := wrap(tt.in, wrapWidth)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: wrap produced %d lines %q, want %d", tt.name, len(got), got, len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: line %d = %q, want %q", tt.name, i, got[i], tt.want[i])
			}
			if utf8.RuneCountInString(got[i]) > wrapWidth {
				t.Errorf("%s: line %d is %d chars, over the wrap width", tt.name, i, utf8.RuneCountInString(got[i]))
			}
			if !utf8.ValidString(got[i]) {
				t.Errorf("%s: line %d is not valid UTF-8: %q", tt.name, i, got[i])
			}
		}
	}
}

func TestTextRendering(t *testing.T) {
	alice := &model.Worker{ID: 1, UserName: "alice"}
	entries := []*model.Entry{
		{ID: 1, WorkerID: 1, Minutes: 90, Message: "worked on the api", Date: time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)},
		{ID: 2, WorkerID: 1, Minutes: 30, Message: "reviews", Date: time.Date(2024, 3, 6, 14, 0, 0, 0, time.UTC)},
	}
	win, _ := Monthly(2024, 3)
	r, err := Build(win, entries, testResolver(map[int64]*model.Worker{1: alice}))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if r.Groups[0].Minutes != 120 {
		t.Fatalf("minutes = %d, want 120", r.Groups[0].Minutes)
	}

	want := strings.Join([]string{
		"+-----------------------------------------+",
		"|             alice (2024-03)             |",
		"+------------+--------+-------------------+",
		"| Date       | Hours  | Description       |",
		"+------------+--------+-------------------+",
		"| 2024-03-05 | 1h 30m | worked on the api |",
		"| 2024-03-06 | 0h 30m | reviews           |",
		"+------------+--------+-------------------+",
		"|            | 2h 0m  | $300.00           |",
		"+------------+--------+-------------------+",
		"",
		"",
	}, "\n")
	if got := r.Text(); got != want {
		t.Errorf("Text() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTextRenderingWrapsLongMessages(t *testing.T) {
	worker := &model.Worker{ID: 1, UserName: "bob"}
	msg := strings.Repeat("debugging the deployment pipeline ", 3) // 101 chars trimmed
	entries := []*model.Entry{
		{ID: 1, WorkerID: 1, Minutes: 60, Message: msg, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	win, _ := Monthly(2024, 3)
	r, err := Build(win, entries, testResolver(map[int64]*model.Worker{1: worker}))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	out := r.Text()
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 0 && !strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "|") {
			t.Errorf("unexpected table line %q", line)
		}
	}
	// The wrapped continuation row has empty date and hours cells.
	if !strings.Contains(out, "|            |       | ") {
		t.Errorf("expected continuation row with empty date and hours cells in:\n%s", out)
	}
	if !strings.Contains(out, "$150.00") {
		t.Errorf("expected totals amount $150.00 in:\n%s", out)
	}
}

func TestTextRenderingWidensForLongTitle(t *testing.T) {
	name := strings.Repeat("a", 80)
	worker := &model.Worker{ID: 1, UserName: name}
	entries := []*model.Entry{
		{ID: 1, WorkerID: 1, Minutes: 30, Message: "ops", Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	win, _ := Monthly(2024, 3)
	r, err := Build(win, entries, testResolver(map[int64]*model.Worker{1: worker}))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	out := r.Text()
	title := name + " (2024-03)"
	if !strings.Contains(out, title) {
		t.Fatalf("title %q missing from:\n%s", title, out)
	}

	// Every line of the table shares one width, title box included.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines[1:] {
		if len(line) != len(lines[0]) {
			t.Errorf("line %q is %d chars, want %d to match the title box", line, len(line), len(lines[0]))
		}
	}
	if len(lines[0]) < len(title)+2 {
		t.Errorf("table width %d cannot hold the title (%d chars)", len(lines[0]), len(title))
	}
}
