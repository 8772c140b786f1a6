package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invoke runs the CLI and returns status, stdout and stderr.
func invoke(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

// TestRun_Subcommands checks each counter end to end.
func TestRun_Subcommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"Anagrams", []string{"anagrams", "abba"}, "4\n"},
		{"Rectangles", []string{"rectangles", "[[0,0],[0,1],[1,1],[3,1],[1,0],[2,1],[2,0],[3,0]]"}, "6\n"},
		{"Triangles", []string{"triangles", "[[0,0],[0,1],[1,0]]"}, "1\n"},
		{"GP", []string{"gp", "-r", "4", "[1,16,4,16,64,16]"}, "3\n"},
		{"Human", []string{"-human", "anagrams", strings.Repeat("a", 60)}, "35,990\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := invoke(t, "", tc.args...)
			require.Equal(t, exitOK, code, errOut)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestRun_UsageErrors checks malformed invocations exit with status 2.
func TestRun_UsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"hexagons"},
		{"anagrams"},
		{"rectangles", "not json"},
		{"rectangles", "[[0,0,99],[0,1],[1,0],[1,1]]"},
		{"triangles", "[[0],[0,1],[1,0],[1,1]]"},
		{"gp", "[1,2,4]"},
		{"gp", "-r", "x", "[1,2,4]"},
		{"-log-level", "loud", "anagrams", "ab"},
		{"-workers", "0", "anagrams", "ab"},
	}
	for _, args := range cases {
		code, _, _ := invoke(t, "", args...)
		assert.Equal(t, exitUsage, code, "args %q", args)
	}
}

// TestRun_ValidationErrors checks rejected input exits with status 1.
func TestRun_ValidationErrors(t *testing.T) {
	code, out, errOut := invoke(t, "", "anagrams", "aBc")
	assert.Equal(t, exitCount, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "count failed")

	code, _, _ = invoke(t, "", "gp", "-r", "0", "[1,2,4]")
	assert.Equal(t, exitCount, code)

	code, _, _ = invoke(t, "", "triangles", "[[0,0],[0,0]]")
	assert.Equal(t, exitCount, code)
}

// TestRun_Batch decodes a batch, runs it and checks the JSON lines.
func TestRun_Batch(t *testing.T) {
	in := `[
		{"kind":"anagrams","text":"abba"},
		{"kind":"gp","values":[1,2,4],"ratio":0},
		{"kind":"triangles","points":[[0,0],[0,1],[1,0],[1,1]]}
	]`
	code, out, errOut := invoke(t, in, "-workers", "2", "-debug", "batch")
	assert.Equal(t, exitCount, code, "one request fails")
	assert.Contains(t, errOut, "tally.Request")

	var lines []batchLine
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var l batchLine
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l))
		lines = append(lines, l)
	}
	require.Len(t, lines, 3)
	assert.Equal(t, "4", lines[0].Count)
	assert.Contains(t, lines[1].Error, "ratio must be non-zero")
	assert.Equal(t, "4", lines[2].Count)
}

// TestRun_BatchBadJSON rejects undecodable batch input, including points
// that are not [x, y] pairs.
func TestRun_BatchBadJSON(t *testing.T) {
	for _, in := range []string{
		"{",
		`[{"kind":"rectangles","points":[[0,0,99],[0,1],[1,0],[1,1]]}]`,
		`[{"kind":"triangles","points":[[0],[0,1],[1,0]]}]`,
	} {
		code, out, errOut := invoke(t, in, "batch")
		assert.Equal(t, exitUsage, code, "input %s", in)
		assert.Empty(t, out, "input %s", in)
		if in != "{" {
			assert.Contains(t, errOut, "exactly two coordinates")
		}
	}
}
