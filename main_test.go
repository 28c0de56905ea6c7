package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ilpload/render"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		outputFormat = "text"
		templatePath = ""
		completeNegatives = false
		checkBuiltin = false
		programPath = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuiltinCommand(t *testing.T) {
	out, err := execute(t, "builtin", "even", "--output", "yaml")
	require.NoError(t, err)

	var doc render.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "even/1", doc.Target)
	assert.Len(t, doc.Positive, 6)
}

func TestExportThenShow(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "predecessor")
	_, err := execute(t, "export", "predecessor", dir)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "neg.pl"))

	out, err := execute(t, "show", dir, "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "problem: predecessor\n")
	assert.Contains(t, out, "target: predecessor/2\n")
}

func TestShowCompletesNegatives(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lt")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bk.pl"), []byte("succ(0,1)."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pos.pl"), []byte("lt(0,1)."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "neg.pl"), nil, 0o644))

	out, err := execute(t, "show", dir, "--complete-negatives", "--output", "yaml")
	require.NoError(t, err)
	var doc render.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"lt(0,0)", "lt(1,0)", "lt(1,1)"}, doc.Negative)
}

func TestShowWithTemplate(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "export", "even", filepath.Join(dir, "even"))
	require.NoError(t, err)
	bias := filepath.Join(dir, "bias.yaml")
	require.NoError(t, os.WriteFile(bias, []byte("steps: 2\nrules: [{predicate: $target}]\n"), 0o644))

	out, err := execute(t, "show", filepath.Join(dir, "even"), "--template", bias, "--output", "yaml")
	require.NoError(t, err)
	var doc render.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.NotNil(t, doc.Template)
	assert.Equal(t, 2, doc.Template.Steps)
	assert.Empty(t, doc.Template.Auxiliary)
}

func TestShowParseError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "broken")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, f := range []string{"bk.pl", "pos.pl", "neg.pl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("foo(1,2"), 0o644))
	}
	_, err := execute(t, "show", dir)
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	program := filepath.Join(t.TempDir(), "even.pl")
	require.NoError(t, os.WriteFile(program, []byte("even(X) :- zero(X).\neven(X) :- succ(Y,X), succ(Z,Y), even(Z).\n"), 0o644))

	out, err := execute(t, "check", "even", "--builtin", "--program", program)
	require.NoError(t, err)
	assert.Contains(t, out, "positive: 6/6 covered\n")
	assert.Contains(t, out, "negative: 5/5 rejected\n")

	weak := filepath.Join(t.TempDir(), "weak.pl")
	require.NoError(t, os.WriteFile(weak, []byte("even(X) :- zero(X).\n"), 0o644))
	out, err = execute(t, "check", "even", "--builtin", "--program", weak)
	assert.Error(t, err)
	assert.Contains(t, out, "missed even(2)")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := execute(t, "builtin", "even", "--output", "json")
	assert.Error(t, err)
}
