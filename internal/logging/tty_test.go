package logging

import (
	"bytes"
	"testing"
)

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"tty", nil, true, true},
		{"non-TTY", nil, false, false},
		{"NO_COLOR on a tty", map[string]string{"NO_COLOR": "1"}, true, false},
		{"TERM=dumb on a tty", map[string]string{"TERM": "dumb"}, true, false},
		{"FORCE_COLOR off a tty", map[string]string{"FORCE_COLOR": "1"}, false, true},
		{"FORCE_COLOR=0", map[string]string{"FORCE_COLOR": "0"}, false, false},
		{"NO_COLOR beats FORCE_COLOR", map[string]string{"NO_COLOR": "", "FORCE_COLOR": "1"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"NO_COLOR", "TERM", "FORCE_COLOR"} {
				t.Setenv(k, "")
			}
			unsetEnv(t, "NO_COLOR", "FORCE_COLOR")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := supportsColor(tt.isTTY); got != tt.want {
				t.Errorf("supportsColor(%v) = %v, want %v (env=%v)", tt.isTTY, got, tt.want, tt.env)
			}
		})
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY should return false for a bytes.Buffer")
	}
}
