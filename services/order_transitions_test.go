package services

import (
	"reflect"
	"testing"
)

func TestNextStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   []string
	}{
		{StatusPending, []string{StatusProcessing, StatusCompleted, StatusCancelled}},
		{StatusProcessing, []string{StatusCompleted, StatusCancelled}},
		{StatusCompleted, nil},
		{StatusCancelled, nil},
		{StatusRefunded, nil},
		{"bogus", nil},
	}
	for _, tt := range tests {
		if got := NextStatuses(tt.status); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NextStatuses(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestNextStatusesReturnsCopy(t *testing.T) {
	got := NextStatuses(StatusPending)
	got[0] = "mutated"
	if again := NextStatuses(StatusPending); again[0] != StatusProcessing {
		t.Fatal("NextStatuses leaked its backing array")
	}
}

func TestKnownStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled, StatusRefunded} {
		if !KnownStatus(s) {
			t.Errorf("KnownStatus(%q) = false", s)
		}
	}
	if KnownStatus("paid") {
		t.Error(`KnownStatus("paid") = true`)
	}
}
