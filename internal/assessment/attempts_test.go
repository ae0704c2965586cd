package assessment

import "testing"

func TestNoMoreAttemptsUnlimited(t *testing.T) {
	for _, n := range []int{0, 1, 5, 1000} {
		a := AttemptState{MaxAttempts: 0, NumAttempts: n}
		if a.NoMoreAttempts() {
			t.Errorf("num=%d: NoMoreAttempts() = true with unlimited attempts", n)
		}
	}
}

func TestNoMoreAttemptsLimited(t *testing.T) {
	for m := 1; m <= 4; m++ {
		for n := 0; n <= 6; n++ {
			a := AttemptState{MaxAttempts: m, NumAttempts: n}
			if got, want := a.NoMoreAttempts(), n >= m; got != want {
				t.Errorf("max=%d num=%d: NoMoreAttempts() = %v, want %v", m, n, got, want)
			}
		}
	}
}

func TestEnableExtended(t *testing.T) {
	tests := []struct {
		name  string
		state AttemptState
		want  bool
	}{
		{"attempts remain", AttemptState{MaxAttempts: 2, NumAttempts: 1, ExtendedFeedback: true}, false},
		{"exhausted", AttemptState{MaxAttempts: 2, NumAttempts: 2, ExtendedFeedback: true}, true},
		{"exhausted without feedback", AttemptState{MaxAttempts: 2, NumAttempts: 2}, false},
		{"unlimited", AttemptState{NumAttempts: 9, ExtendedFeedback: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.EnableExtended(); got != tt.want {
				t.Errorf("EnableExtended() = %v, want %v", got, tt.want)
			}
		})
	}
}
