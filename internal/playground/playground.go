// Package playground is the mock code runner behind the playground page.
// It does not execute anything: after a short delay it echoes the literal
// arguments of python print calls.
package playground

import (
	"context"
	"regexp"
	"strings"
	"time"
)

const (
	// NoOutput is reported for python code without print calls
	NoOutput = "Code executed successfully (no output)"
	// Success is reported for every other language
	Success = "Code executed successfully"
)

// Languages the editor can be switched between
var Languages = []string{"python", "java", "javascript"}

var printRE = regexp.MustCompile(`print\((.*?)\)`)

// Result is the simulated output of a run
type Result struct {
	Language string
	Output   string
	Lines    int
	Elapsed  time.Duration
}

// Runner simulates code execution
type Runner struct {
	Delay time.Duration
}

// NewRunner creates a runner with the given artificial delay
func NewRunner(delay time.Duration) *Runner {
	return &Runner{Delay: delay}
}

// Run waits for the configured delay and returns the simulated output. It
// returns ctx.Err() if the context ends first.
func (r *Runner) Run(ctx context.Context, language, source string) (Result, error) {
	start := time.Now()

	if r.Delay > 0 {
		timer := time.NewTimer(r.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	output := Simulate(language, source)
	return Result{
		Language: language,
		Output:   output,
		Lines:    strings.Count(output, "\n") + 1,
		Elapsed:  time.Since(start),
	}, nil
}

// Simulate produces the output of a run without the delay
func Simulate(language, source string) string {
	if language != "python" {
		return Success
	}

	matches := printRE.FindAllString(source, -1)
	if len(matches) == 0 {
		return NoOutput
	}

	outputs := make([]string, 0, len(matches))
	for _, m := range matches {
		arg := strings.TrimPrefix(m, "print(")
		arg = strings.ReplaceAll(arg, ")", "")
		arg = strings.NewReplacer(`'`, "", `"`, "").Replace(arg)
		outputs = append(outputs, arg)
	}
	return strings.Join(outputs, "\n")
}

// NextLanguage returns the editor language after lang
func NextLanguage(lang string) string {
	for i, l := range Languages {
		if l == lang {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return Languages[0]
}
