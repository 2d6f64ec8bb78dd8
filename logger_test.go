package main

import "testing"

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"silent", LogLevelSilent, false},
		{"normal", LogLevelNormal, false},
		{"VERBOSE", LogLevelVerbose, false},
		{"Debug", LogLevelDebug, false},
		{"loud", LogLevelNormal, true},
		{"", LogLevelNormal, true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	levels := map[LogLevel]string{
		LogLevelSilent:  "silent",
		LogLevelNormal:  "normal",
		LogLevelVerbose: "verbose",
		LogLevelDebug:   "debug",
	}
	for level, want := range levels {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}
