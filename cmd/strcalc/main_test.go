package main

import (
	"os"
	"os/exec"
	"testing"
)

func TestMain_ExitStatus(t *testing.T) {
	if os.Getenv("BE_MAIN") == "1" {
		for i, arg := range os.Args {
			if arg == "--" {
				os.Args = append([]string{"strcalc"}, os.Args[i+1:]...)
				break
			}
		}
		main()
		return
	}

	tests := []struct {
		name     string
		arg      string
		wantFail bool
	}{
		{name: "valid input", arg: "1,2:3", wantFail: false},
		{name: "unmatched input", arg: "asdf", wantFail: true},
		{name: "negative input", arg: "1,-2", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestMain_ExitStatus$", "--", "sum", "--no-color", tt.arg)
			cmd.Env = append(os.Environ(), "BE_MAIN=1")

			err := cmd.Run()
			if tt.wantFail && err == nil {
				t.Errorf("expected non-zero exit")
			}
			if !tt.wantFail && err != nil {
				t.Errorf("expected success, got %v", err)
			}
		})
	}
}
