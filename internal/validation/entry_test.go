package validation

import (
	"errors"
	"testing"
)

func fields(t *testing.T, err error) []string {
	t.Helper()
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("error %v is not validation.Errors", err)
	}
	out := make([]string, len(errs))
	for i, fe := range errs {
		out[i] = fe.Field
	}
	return out
}

func TestValidateNewEntry(t *testing.T) {
	thirty := 30
	negative := -5

	if err := ValidateNewEntry("alice", &thirty, "did things"); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	tests := []struct {
		name    string
		worker  string
		minutes *int
		message string
		want    []string
	}{
		{"missing worker", "", &thirty, "m", []string{"worker"}},
		{"blank worker", "   ", &thirty, "m", []string{"worker"}},
		{"missing minutes", "alice", nil, "m", []string{"minutes"}},
		{"negative minutes", "alice", &negative, "m", []string{"minutes"}},
		{"missing message", "alice", &thirty, "", []string{"message"}},
		{"everything missing", "", nil, "", []string{"worker", "minutes", "message"}},
	}
	for _, tt := range tests {
		err := ValidateNewEntry(tt.worker, tt.minutes, tt.message)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		got := fields(t, err)
		if len(got) != len(tt.want) {
			t.Errorf("%s: failing fields = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: failing fields = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestValidateEntryPatch(t *testing.T) {
	ten := 10
	negative := -1
	blank := "  "

	if err := ValidateEntryPatch(nil, nil); err != nil {
		t.Errorf("empty patch rejected: %v", err)
	}
	if err := ValidateEntryPatch(&ten, nil); err != nil {
		t.Errorf("valid patch rejected: %v", err)
	}
	if err := ValidateEntryPatch(&negative, nil); err == nil {
		t.Error("negative minutes accepted")
	}
	if err := ValidateEntryPatch(nil, &blank); err == nil {
		t.Error("blank message accepted")
	}
}

func TestValidateWorkerName(t *testing.T) {
	if err := ValidateWorkerName("alice"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateWorkerName(" "); err == nil {
		t.Error("blank name accepted")
	}
}

func TestOrNilReturnsUntypedNil(t *testing.T) {
	var errs Errors
	if errs.OrNil() != nil {
		t.Error("empty Errors must collapse to nil")
	}
}
