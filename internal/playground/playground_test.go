package playground

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	tests := []struct {
		name     string
		language string
		source   string
		want     string
	}{
		{"single print", "python", `print("hello")`, "hello"},
		{"several prints", "python", "print('a')\nx = 1\nprint(\"b\")", "a\nb"},
		{"f-string keeps its prefix", "python", `print(f"Result: {result}")`, "fResult: {result}"},
		{"nested call stops at first paren", "python", `print(two_sum(nums, target))`, "two_sum(nums, target"},
		{"no prints", "python", "x = 1", NoOutput},
		{"other language", "java", `System.out.println("hi");`, Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Simulate(tt.language, tt.source))
		})
	}
}

func TestRunWaitsForDelay(t *testing.T) {
	r := NewRunner(20 * time.Millisecond)

	res, err := r.Run(context.Background(), "python", "print('x')\nprint('y')")
	require.NoError(t, err)
	assert.Equal(t, "x\ny", res.Output)
	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, "python", res.Language)
	assert.GreaterOrEqual(t, res.Elapsed, 20*time.Millisecond)
}

func TestRunCancelled(t *testing.T) {
	r := NewRunner(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, "python", "print('x')")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWithoutDelay(t *testing.T) {
	res, err := NewRunner(0).Run(context.Background(), "cpp", "int main() {}")
	require.NoError(t, err)
	assert.Equal(t, Success, res.Output)
	assert.Equal(t, 1, res.Lines)
}

func TestNextLanguage(t *testing.T) {
	assert.Equal(t, "java", NextLanguage("python"))
	assert.Equal(t, "javascript", NextLanguage("java"))
	assert.Equal(t, "python", NextLanguage("javascript"))
	assert.Equal(t, "python", NextLanguage("cobol"))
}
