package model

import "testing"

func TestFetchStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   FetchStatus
		expected bool
	}{
		{FetchStatusPending, false},
		{FetchStatusFetching, false},
		{FetchStatusCompleted, true},
		{FetchStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("FetchStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestFetchStatus_String(t *testing.T) {
	status := FetchStatusFetching
	expected := "Fetching"
	result := status.String()

	if result != expected {
		t.Errorf("FetchStatus.String() = %s, expected %s", result, expected)
	}
}
