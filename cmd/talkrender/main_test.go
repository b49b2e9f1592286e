package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runTalkrender(t *testing.T, stdin string, args ...string) (code int, stdout string, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name  string
		stdin string
		args  []string
		code  int
		want  string
	}{
		{"DefaultHTML", "forum:[b]hi[/b]", nil, 0, "<p><b>hi</b></p>\n"},
		{"Text", "forum:[b]hi[/b]", []string{"-f", "text"}, 0, "hi"},
		{"SourceFlag", "a<b", []string{"--source", "text"}, 0, "<p>a&lt;b</p>\n"},
		{"SourceFlagKeepsStoredFormat", "code:x<y", []string{"-s", "forum"}, 0, "<pre>x&lt;y</pre>\n"},
		{"Raw", "forum:x", []string{"--format=raw"}, 0, "forum:x"},
		{"AutoLink", "forumL:see http://x/", []string{"--base-url", "https://pc.example/"}, 0, "<p>see <a href=\"http://x/\">http://x/</a></p>\n"},
		{"UnknownFormat", "forum:x", []string{"-f", "pdf"}, 2, ""},
		{"UnknownFlag", "forum:x", []string{"--bogus"}, 2, ""},
		{"Help", "", []string{"--help"}, 0, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, _ := runTalkrender(t, tc.stdin, tc.args...)
			require.Equal(t, tc.code, code)
			require.Equal(t, tc.want, stdout)
		})
	}
}

func TestRun_Warnings(t *testing.T) {
	code, stdout, stderr := runTalkrender(t, "forum:hello [b]world", "-w", "-f", "forum")
	require.Equal(t, 0, code)
	require.Equal(t, "hello [b]world[/b]", stdout)
	require.Contains(t, stderr, `"issue":"Missing Close"`)
	require.Contains(t, stderr, `"byte_idx":6`)

	_, _, stderr = runTalkrender(t, "forum:hello [b]world", "-f", "forum")
	require.Empty(t, stderr)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("forum:a"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("text:b"), 0o644))

	code, stdout, _ := runTalkrender(t, "ignored", "-f", "text", first, second)
	require.Equal(t, 0, code)
	require.Equal(t, "ab", stdout)

	code, _, stderr := runTalkrender(t, "", filepath.Join(dir, "missing.txt"))
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "cannot read input")
}

func TestHasSourceFormat(t *testing.T) {
	require.True(t, hasSourceFormat("forum:x"))
	require.True(t, hasSourceFormat("forumLS:x"))
	require.True(t, hasSourceFormat("code:c:x"))
	require.True(t, hasSourceFormat("text:"))
	require.False(t, hasSourceFormat("html:x"))
	require.False(t, hasSourceFormat("plain text"))
}
