package entity

import "testing"

func TestContactSubmissionAcceptsReplies(t *testing.T) {
	tests := []struct {
		status   TicketStatus
		expected bool
	}{
		{TicketStatusOpen, true},
		{TicketStatusReplied, true},
		{TicketStatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			c := &ContactSubmission{Status: tt.status}
			if got := c.AcceptsReplies(); got != tt.expected {
				t.Errorf("AcceptsReplies() with status %s = %v, want %v", tt.status, got, tt.expected)
			}
		})
	}
}
