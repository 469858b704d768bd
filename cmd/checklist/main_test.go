package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "[x] Buy milk\r\n[ ] Walk dog\n[x] Pay bills\n", "inspect")
	require.NoError(t, err)

	var res inspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.True(t, res.Checklist)
	require.Len(t, res.Items, 3)
	require.Equal(t, "Walk dog", res.Items[1].Label)
	require.NotNil(t, res.Percent)
	require.Equal(t, 66, *res.Percent)
	require.Equal(t, "in_process", res.Status)
}

func TestInspectPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("milk\n[x] eggs"), 0o600))

	out, err := execute(t, "", "inspect", path)
	require.NoError(t, err)

	var res inspectResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.False(t, res.Checklist)
	require.True(t, res.LooksLikeChecklist)
	require.Nil(t, res.Percent)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := execute(t, "", "inspect", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	out, err := execute(t, "milk\n\n  eggs  \n", "format")
	require.NoError(t, err)
	require.Equal(t, "[ ] milk\n[ ] eggs\n", out)

	out, err = execute(t, "[x] milk\n[ ] eggs", "format", "--plain")
	require.NoError(t, err)
	require.Equal(t, "milk\neggs\n", out)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "Absent Fields",
			stdin: "[x] a\n[ ] b",
			args:  []string{"progress"},
			want:  "percent: 50\nstatus: in_process\nwrites: status=in_process percent=50\n",
		},
		{
			name:  "Cancelled Is Kept",
			stdin: "[x] a\n[x] b",
			args:  []string{"progress", "--current-status", "cancelled", "--current-percent", "50"},
			want:  "percent: 100\nstatus: completed\nwrites: percent=100\n",
		},
		{
			name:  "Nothing To Write",
			stdin: "[ ] a",
			args:  []string{"progress", "--current-status", "needs_action", "--current-percent", "0"},
			want:  "percent: 0\nstatus: needs_action\nwrites: none\n",
		},
		{
			name:  "Plain Text",
			stdin: "just a note",
			args:  []string{"progress"},
			want:  "not a checklist\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestProgressRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "[x] a", "progress", "--current-status", "paused")
	require.Error(t, err)

	_, err = execute(t, "[x] a", "progress", "--current-percent", "150")
	require.Error(t, err)
}
