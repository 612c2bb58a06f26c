package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hajimehoshi/go-meshedit"
	"github.com/hajimehoshi/go-meshedit/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const pipeline = `
steps:
  - op: triangulate
  - op: loop
    iterations: 2
  - op: remesh
    iterations: 3
  - op: simplify
log_level: debug
`

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(pipeline))
	require.NoError(t, err)
	want := config.Config{
		Steps: []config.Step{
			{Op: "triangulate"},
			{Op: "loop", Iterations: 2},
			{Op: "remesh", Iterations: 3},
			{Op: "simplify"},
		},
		ValidateEachStep: true,
		LogLevel:         "debug",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Parse (-want +got):\n%s", diff)
	}

	assert.Equal(t, []meshedit.Step{
		{Pass: meshedit.PassTriangulate},
		{Pass: meshedit.PassLoop, Iterations: 2},
		{Pass: meshedit.PassRemesh, Iterations: 3},
		{Pass: meshedit.PassSimplify},
	}, c.Pipeline())
}

func TestParseEmpty(t *testing.T) {
	c, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Empty(t, c.Pipeline())
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
		want []string
	}{
		{
			name: "unknown op",
			data: "steps: [{op: smooth}]",
			want: []string{`steps[0]`, `"smooth"`},
		},
		{
			name: "every problem is reported",
			data: "steps: [{op: loop, iterations: -1}, {op: bevel}]\nlog_level: loud",
			want: []string{"negative iterations -1", `steps[1]`, `"loud"`},
		},
		{
			name: "not yaml",
			data: "steps: {",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.data))
			require.Error(t, err)
			for _, w := range tc.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pipeline), 0o644))
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Steps, 4)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
