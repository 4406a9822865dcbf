package domain

import "testing"

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   Status
		to     Status
		expect bool
	}{
		{"pending -> done", StatusPending, StatusDone, true},
		{"done -> pending", StatusDone, StatusPending, true},
		{"pending -> pending", StatusPending, StatusPending, false},
		{"done -> done", StatusDone, StatusDone, false},
		{"unknown behaves like pending", Status("in_progress"), StatusDone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expect {
				t.Errorf("CanTransitionTo() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestStatus_Display(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPending, "Pending"},
		{StatusDone, "Done"},
		{Status("other"), "other"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{" HIGH ", PriorityHigh, false},
		{"Medium", PriorityMedium, false},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePriority() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePriority() = %q, want %q", got, tt.want)
			}
		})
	}
}
