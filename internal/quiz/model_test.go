package quiz

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"number", `3`, "3"},
		{"string", `"3"`, "3"},
		{"padded string", `" q7 "`, "q7"},
		{"null", `null`, ""},
		{"float", `2.0`, "2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if id != tt.want {
				t.Errorf("got %q, want %q", id, tt.want)
			}
		})
	}
}

func TestKeySpecUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantValues  []string
		wantInvalid bool
		wantEmpty   bool
	}{
		{"single string", `"2"`, []string{"2"}, false, false},
		{"comma list", `"1, 3,4"`, []string{"1", "3", "4"}, false, false},
		{"trailing comma", `"1,"`, []string{"1"}, false, false},
		{"empty string sentinel", `""`, nil, false, true},
		{"whitespace sentinel", `"  "`, nil, false, true},
		{"null sentinel", `null`, nil, false, true},
		{"number", `4`, []string{"4"}, false, false},
		{"array of numbers", `[1,2]`, []string{"1", "2"}, false, false},
		{"array of strings", `["1","2"]`, []string{"1", "2"}, false, false},
		{"object is invalid", `{"a":1}`, nil, true, false},
		{"bool is invalid", `true`, nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k KeySpec
			if err := json.Unmarshal([]byte(tt.in), &k); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if k.Invalid() != tt.wantInvalid {
				t.Errorf("Invalid() = %v, want %v", k.Invalid(), tt.wantInvalid)
			}
			if k.IsEmpty() != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", k.IsEmpty(), tt.wantEmpty)
			}
			if len(tt.wantValues) > 0 && !reflect.DeepEqual(k.Values(), tt.wantValues) {
				t.Errorf("Values() = %v, want %v", k.Values(), tt.wantValues)
			}
		})
	}
}

func TestFilteredOptions(t *testing.T) {
	q := Question{
		QuestionNumber: "1",
		Options: []Option{
			{OptionNumber: "1", OptionText: "Alpha"},
			{OptionNumber: "2", OptionText: "   "},
			{OptionNumber: "3", OptionText: ""},
			{OptionNumber: "4", OptionText: "Delta"},
		},
	}

	got := q.FilteredOptions()
	if len(got) != 2 {
		t.Fatalf("got %d options, want 2", len(got))
	}
	if got[0].OptionNumber != "1" || got[1].OptionNumber != "4" {
		t.Errorf("kept options %v %v, want 1 and 4", got[0].OptionNumber, got[1].OptionNumber)
	}
}

func TestCanonicalKey(t *testing.T) {
	opts := []Option{
		{OptionNumber: "1", OptionText: "A"},
		{OptionNumber: "2", OptionText: "B"},
		{OptionNumber: "3", OptionText: "C"},
	}

	tests := []struct {
		name string
		q    Question
		want []string
	}{
		{
			"single key",
			Question{Options: opts, CorrectOption: NewKeySpec("2")},
			[]string{"2"},
		},
		{
			"multi key sorted and deduped",
			Question{Options: opts, CorrectOption: NewKeySpec("3", "1", "3")},
			[]string{"1", "3"},
		},
		{
			"empty sentinel selects all",
			Question{Options: opts, CorrectOption: NewKeySpec()},
			[]string{"1", "2", "3"},
		},
		{
			"missing reference falls back to all",
			Question{Options: opts, CorrectOption: NewKeySpec("9")},
			[]string{"1", "2", "3"},
		},
		{
			"blank options excluded from fallback",
			Question{
				Options: []Option{
					{OptionNumber: "1", OptionText: "A"},
					{OptionNumber: "2", OptionText: ""},
				},
				CorrectOption: NewKeySpec(),
			},
			[]string{"1"},
		},
		{
			"key referencing blank option falls back",
			Question{
				Options: []Option{
					{OptionNumber: "1", OptionText: "A"},
					{OptionNumber: "2", OptionText: ""},
					{OptionNumber: "3", OptionText: "C"},
				},
				CorrectOption: NewKeySpec("2"),
			},
			[]string{"1", "3"},
		},
		{
			"no options yields empty key",
			Question{CorrectOption: NewKeySpec()},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalKey(tt.q)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CanonicalKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanonicalKeyInvalidSpec(t *testing.T) {
	var k KeySpec
	if err := json.Unmarshal([]byte(`{"bad":true}`), &k); err != nil {
		t.Fatal(err)
	}
	q := Question{
		Options: []Option{
			{OptionNumber: "1", OptionText: "A"},
			{OptionNumber: "2", OptionText: "B"},
		},
		CorrectOption: k,
	}

	got := CanonicalKey(q)
	want := []string{"1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CanonicalKey() = %v, want %v", got, want)
	}
}

func TestBuildWeekBank(t *testing.T) {
	q := func(n string) Question { return Question{QuestionNumber: ID(n)} }

	assignments := []Assignment{
		{WeekNumber: 2, Questions: []Question{q("a"), q("b")}},
		{WeekNumber: 1, Questions: []Question{q("c")}},
		{WeekNumber: 2, Questions: []Question{q("d")}},
		{WeekNumber: 5, Questions: nil},
	}

	weeks := BuildWeekBank(assignments)

	if len(weeks) != 3 {
		t.Fatalf("got %d weeks, want 3", len(weeks))
	}
	if weeks[0].WeekNumber != 1 || weeks[1].WeekNumber != 2 || weeks[2].WeekNumber != 5 {
		t.Errorf("week order = %d %d %d, want 1 2 5", weeks[0].WeekNumber, weeks[1].WeekNumber, weeks[2].WeekNumber)
	}

	got := make([]string, 0, len(weeks[1].Questions))
	for _, qu := range weeks[1].Questions {
		got = append(got, string(qu.QuestionNumber))
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "d"}) {
		t.Errorf("week 2 questions = %v, want [a b d]", got)
	}

	if weeks[2].Questions == nil || len(weeks[2].Questions) != 0 {
		t.Errorf("empty week should keep an empty question list, got %v", weeks[2].Questions)
	}
}

func TestBuildWeekBankEmpty(t *testing.T) {
	if got := BuildWeekBank(nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
