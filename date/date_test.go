package date

import (
	"encoding/json"
	"testing"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("same day gives two different time()")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2025-07-01", want: "2025-07-01"},
		{input: "2025-7-1", want: "2025-07-01"},
		{input: "2024-02-29", want: "2024-02-29"},
		{input: "", wantErr: true},
		{input: "01/07/2025", wantErr: true},
		{input: "2025-13-01", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err == nil && got.String() != tc.want {
				t.Errorf("Parse(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	if got := New(2025, 1, 32).String(); got != "2025-02-01" {
		t.Errorf("New(2025, 1, 32) = %q, want 2025-02-01", got)
	}
	if got := MustParse("2025-03-01").Add(-1).String(); got != "2025-02-28" {
		t.Errorf("Add(-1) = %q, want 2025-02-28", got)
	}
}

func TestJSON(t *testing.T) {
	in := MustParse("2025-01-05")
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-01-05"` {
		t.Errorf("Marshal = %s", b)
	}
	var out Date
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip got %v want %v", out, in)
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &out); err == nil {
		t.Error("expected an error for an invalid date")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParse("2025-01-10"), MustParse("2025-01-20"))
	testCases := []struct {
		on   string
		want bool
	}{
		{"2025-01-09", false},
		{"2025-01-10", true},
		{"2025-01-15", true},
		{"2025-01-20", true},
		{"2025-01-21", false},
	}
	for _, tc := range testCases {
		if got := r.Contains(MustParse(tc.on)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.on, got, tc.want)
		}
	}

	open := Range{From: MustParse("2025-01-10")}
	if !open.Contains(MustParse("2030-01-01")) {
		t.Error("open upper bound should contain any later date")
	}
}
