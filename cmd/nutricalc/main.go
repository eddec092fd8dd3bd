// CLI nutrition calculator. Prompts for height, weight, age and activity
// level, prints the issues or the daily intake estimate, and repeats until
// EOF. Pass the field flags to compute a single estimate without prompting.
// Usage: go run ./cmd/nutricalc [--once] [--height 170 --weight 70 --age 30 --activity active]
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lg/nutrition-calculator-api/internal/nutrition"
)

// errInvalid makes the process exit 1 when the last submission failed
// validation in --once or flag mode. The issues themselves are already printed.
var errInvalid = errors.New("invalid input")

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newRootCmd wires the command to the given streams so tests can drive it.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var once bool
	var raw nutrition.RawInput

	cmd := &cobra.Command{
		Use:           "nutricalc",
		Short:         "Estimate recommended daily nutrition intake",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("height") || flags.Changed("weight") || flags.Changed("age") || flags.Changed("activity") {
				return finish(printOutcome(out, nutrition.Submit(raw)))
			}
			return runPrompt(in, out, once)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "read a single submission, then exit (status 1 when invalid)")
	cmd.Flags().StringVar(&raw.Height, "height", "", "height in cm")
	cmd.Flags().StringVar(&raw.Weight, "weight", "", "weight in kg")
	cmd.Flags().StringVar(&raw.Age, "age", "", "age in years")
	cmd.Flags().StringVar(&raw.Activity, "activity", "",
		"activity level: "+strings.Join(activityNames(), ", "))
	cmd.SetIn(in)
	cmd.SetOut(out)
	return cmd
}

func activityNames() []string {
	levels := nutrition.ActivityLevels()
	names := make([]string, len(levels))
	for i, a := range levels {
		names[i] = string(a)
	}
	return names
}

// runPrompt reads submissions from in until EOF. The current outcome starts
// idle and is replaced by each submission. With once, the first submission
// decides the exit status.
func runPrompt(in io.Reader, out io.Writer, once bool) error {
	reader := bufio.NewReader(in)
	var current nutrition.Outcome

	for {
		raw, err := promptSubmission(reader, out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Partial submission at EOF is dropped.
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		current = printOutcome(out, nutrition.Submit(raw))
		if once {
			return finish(current)
		}
		fmt.Fprintln(out)
	}
}

// promptSubmission asks for the four fields in order.
func promptSubmission(reader *bufio.Reader, out io.Writer) (nutrition.RawInput, error) {
	var raw nutrition.RawInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"Height (cm): ", &raw.Height},
		{"Weight (kg): ", &raw.Weight},
		{"Age: ", &raw.Age},
		{"Activity level (" + strings.Join(activityNames(), ", ") + "): ", &raw.Activity},
	}
	for _, f := range fields {
		fmt.Fprint(out, f.label)
		line, err := reader.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return raw, err
		}
		// Line endings are not part of the value; other whitespace is left
		// for the validator to judge.
		*f.dst = strings.TrimRight(line, "\r\n")
	}
	return raw, nil
}

// printOutcome renders an outcome and returns it unchanged.
func printOutcome(out io.Writer, o nutrition.Outcome) nutrition.Outcome {
	switch o.State {
	case nutrition.StateInvalid:
		for _, is := range o.Issues {
			fmt.Fprintf(out, "  %s\n", is.Message)
		}
	case nutrition.StateValid:
		e := o.Estimate
		fmt.Fprintf(out, "\nRecommended Daily Intake\n")
		fmt.Fprintf(out, "  Calories: %g\n", e.Calories)
		fmt.Fprintf(out, "  Protein:  %gg\n", e.Protein)
		fmt.Fprintf(out, "  Carbs:    %gg\n", e.Carbs)
		fmt.Fprintf(out, "  Fat:      %gg\n", e.Fat)
		fmt.Fprintf(out, "  Water:    %gL\n", e.Water)
	}
	return o
}

// finish maps the final outcome to the command's error.
func finish(o nutrition.Outcome) error {
	if o.State == nutrition.StateInvalid {
		return errInvalid
	}
	return nil
}
