package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// runCLI executes the command with stdin and args and returns stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_FlagsValid(t *testing.T) {
	out, err := runCLI(t, "", "--height", "170", "--weight", "70", "--age", "30", "--activity", "active")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, want := range []string{"Calories: 2300", "Protein:  105g", "Carbs:    210g", "Fat:      35g", "Water:    2.1L"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCLI_FlagsInvalid(t *testing.T) {
	out, err := runCLI(t, "", "--height", "0", "--weight", "70", "--age", "30", "--activity", "light")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	if !strings.Contains(out, "Height is required") {
		t.Errorf("expected height issue, got:\n%s", out)
	}
	if strings.Contains(out, "Calories") {
		t.Errorf("expected no estimate for invalid input, got:\n%s", out)
	}
}

// TestCLI_PromptLoop verifies each submission replaces the previous outcome
// and the loop ends cleanly at EOF.
func TestCLI_PromptLoop(t *testing.T) {
	stdin := "170\n70\n30\nunknown\n" + "170\n70\n30\nactive\n"
	out, err := runCLI(t, stdin)
	if err != nil {
		t.Fatalf("expected no error at EOF, got %v", err)
	}
	first := strings.Index(out, "Activity level is required")
	second := strings.Index(out, "Calories: 2300")
	if first < 0 || second < 0 || second < first {
		t.Errorf("expected issue then estimate, got:\n%s", out)
	}
	if strings.Count(out, "Height (cm): ") != 3 {
		t.Errorf("expected a third prompt before EOF, got:\n%s", out)
	}
}

func TestCLI_OnceInvalid(t *testing.T) {
	out, err := runCLI(t, "\n\n\n\n170\n70\n30\nactive\n", "--once")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	for _, want := range []string{"Height is required", "Weight is required", "Age is required", "Activity level is required"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Calories") {
		t.Errorf("expected --once to stop after the first submission, got:\n%s", out)
	}
}

// TestCLI_LastLineWithoutNewline verifies a final value without a trailing
// newline still counts.
func TestCLI_LastLineWithoutNewline(t *testing.T) {
	out, err := runCLI(t, "170\r\n70\r\n30\r\nmoderate", "--once")
	if err != nil {
		t.Fatalf("expected no error, got %v\n%s", err, out)
	}
	if !strings.Contains(out, "Calories: 2000") {
		t.Errorf("expected estimate, got:\n%s", out)
	}
}

func TestCLI_RejectsArgs(t *testing.T) {
	if _, err := runCLI(t, "", "extra"); err == nil {
		t.Error("expected error for positional args, got nil")
	}
}
