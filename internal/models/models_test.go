package models

import (
	"errors"
	"testing"
)

func TestStatusString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   string
	}{
		{StatusActive, "active"},
		{StatusFinished, "finished"},
		{Status(7), "status(7)"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestStatusDisplay(t *testing.T) {
	t.Parallel()

	if got := StatusActive.Display(); got != "Active Projects" {
		t.Errorf("StatusActive.Display() = %q, want %q", got, "Active Projects")
	}
	if got := StatusFinished.Display(); got != "Finished Projects" {
		t.Errorf("StatusFinished.Display() = %q, want %q", got, "Finished Projects")
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	t.Run("round trips every known status", func(t *testing.T) {
		for _, s := range Statuses {
			parsed, err := ParseStatus(s.String())
			if err != nil {
				t.Fatalf("ParseStatus(%q) returned error: %v", s.String(), err)
			}
			if parsed != s {
				t.Errorf("ParseStatus(%q) = %v, want %v", s.String(), parsed, s)
			}
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := ParseStatus("archived")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Errorf("ParseStatus(\"archived\") error = %v, want ErrUnknownStatus", err)
		}
	})
}
