package domain

import "testing"

func TestFallbackAttendanceStatus(t *testing.T) {
	tests := []struct {
		eventID string
		want    string
	}{
		{"project-presentation", AttendancePending},
		{"tech-quiz", AttendancePending},
		{"e-sports", AttendanceNotRequired},
		{"ui-ux-design", AttendanceNotRequired},
		{"poster-design", AttendanceNotRequired},
		// Unknown events default to venue attendance tracking.
		{"mystery-event", AttendancePending},
	}

	for _, tt := range tests {
		if got := FallbackAttendanceStatus(tt.eventID); got != tt.want {
			t.Errorf("FallbackAttendanceStatus(%q) = %q, want %q", tt.eventID, got, tt.want)
		}
	}
}

func TestAbstractEventIDs(t *testing.T) {
	ids := AbstractEventIDs()
	if len(ids) != 2 {
		t.Fatalf("expected 2 abstract-track events, got %v", ids)
	}
	if ids[0] != "paper-presentation" || ids[1] != "project-presentation" {
		t.Fatalf("unexpected abstract events: %v", ids)
	}
}

func TestEventTitle(t *testing.T) {
	if got := EventTitle("tech-quiz"); got != "Tech Quiz" {
		t.Errorf("EventTitle(tech-quiz) = %q", got)
	}
	if got := EventTitle("mystery-event"); got != "mystery-event" {
		t.Errorf("unknown ids must pass through, got %q", got)
	}
}
