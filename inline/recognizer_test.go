package inline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind_NoKinds(t *testing.T) {
	_, ok := Default.Find("hello :-) http://x/", 0, 0)
	require.False(t, ok)
}

func TestFind_SmileyBoundary(t *testing.T) {
	r := New()

	_, ok := r.Find("heyB-)", 0, AllKinds)
	require.False(t, ok)

	m, ok := r.Find("hey B-)", 0, AllKinds)
	require.True(t, ok)
	require.Equal(t, Match{Kind: KindSmiley, Start: 4, Length: 3, Text: "cool"}, m)
}

func TestFind_Smileys(t *testing.T) {
	type tc struct {
		name    string
		input   string
		startAt int
		want    Match
		wantOK  bool
	}

	tests := []tc{
		{
			name:   "symbol",
			input:  "nice :-) one",
			want:   Match{KindSmiley, 5, 3, "smile"},
			wantOK: true,
		},
		{
			name:   "short_form",
			input:  "nice :)",
			want:   Match{KindSmiley, 5, 2, "smile"},
			wantOK: true,
		},
		{
			name:   "named",
			input:  "a :lol: b",
			want:   Match{KindSmiley, 2, 5, "lol"},
			wantOK: true,
		},
		{
			name:   "named_is_case_sensitive",
			input:  "a :LOL: b",
			wantOK: false,
		},
		{
			name:   "trailing_letter_rejected",
			input:  "x :Pa",
			wantOK: false,
		},
		{
			name:   "trailing_letter_ok_when_not_followed",
			input:  "x :P.",
			want:   Match{KindSmiley, 2, 2, "razz"},
			wantOK: true,
		},
		{
			name:    "start_offset_skips_earlier",
			input:   ":) and ;)",
			startAt: 1,
			want:    Match{KindSmiley, 7, 2, "wink"},
			wantOK:  true,
		},
		{
			name:   "digit_prefixed_symbol",
			input:  "18-O",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Default.Find(tt.input, tt.startAt, KindSmiley)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.want, m)
			}
		})
	}
}

func TestFind_Links(t *testing.T) {
	type tc struct {
		name   string
		input  string
		want   string
		start  int
		wantOK bool
	}

	tests := []tc{
		{name: "simple", input: "see http://foo/ for more", want: "http://foo/", start: 4, wantOK: true},
		{name: "https", input: "https://a.b/c", want: "https://a.b/c", start: 0, wantOK: true},
		{name: "mailto", input: "write mailto:me@example.com.", want: "mailto:me@example.com", start: 6, wantOK: true},
		{name: "trailing_punct", input: "go to http://x.y/z, then", want: "http://x.y/z", start: 6, wantOK: true},
		{name: "alnum_before_protocol", input: "xhttp://foo", wantOK: false},
		{name: "unknown_protocol", input: "gopher://foo", wantOK: false},
		{name: "empty_after_colon", input: "http: nothing", wantOK: false},
		{
			name:   "balanced_parens",
			input:  "(see http://en.wikipedia.org/wiki/Foo_(Bar))",
			want:   "http://en.wikipedia.org/wiki/Foo_(Bar)",
			start:  5,
			wantOK: true,
		},
		{name: "angle_brackets", input: "<http://foo bar> x", want: "http://foo bar", start: 1, wantOK: true},
		{name: "angle_brackets_unclosed", input: "<http://foo bar\n>", want: "http://foo", start: 1, wantOK: true},
		{name: "quote_delimited_keeps_punct", input: `"http://foo/."`, want: "http://foo/.", start: 1, wantOK: true},
		{name: "uppercase_protocol", input: "HTTP://FOO", want: "HTTP://FOO", start: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Default.Find(tt.input, 0, KindLink)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, KindLink, m.Kind)
				require.Equal(t, tt.want, m.Text)
				require.Equal(t, tt.start, m.Start)
				require.Equal(t, len(tt.want), m.Length)
			}
		})
	}
}

func TestFind_LinkBeforeSmiley(t *testing.T) {
	m, ok := Default.Find("x http://a/:-) y", 0, AllKinds)
	require.True(t, ok)
	require.Equal(t, KindLink, m.Kind)
	require.Equal(t, "http://a/:-", m.Text)
}

func TestFind_OnlyRequestedKinds(t *testing.T) {
	m, ok := Default.Find(":-) http://a/", 0, KindLink)
	require.True(t, ok)
	require.Equal(t, KindLink, m.Kind)
	require.Equal(t, 4, m.Start)
}

func TestFind_Iterate(t *testing.T) {
	input := "a :-) b http://c/ d ;)"

	var got []string
	pos := 0
	for {
		m, ok := Default.Find(input, pos, AllKinds)
		if !ok {
			break
		}
		got = append(got, m.Text)
		pos = m.End()
	}

	require.Equal(t, []string{"smile", "http://c/", "wink"}, got)
}

func TestSmileyByName(t *testing.T) {
	s, ok := SmileyByName("cool")
	require.True(t, ok)
	require.Equal(t, "B-)", s.Symbol)
	require.Equal(t, 16, s.Width)

	_, ok = SmileyByName("Cool")
	require.False(t, ok)

	s, ok = Default.SmileyByName("smile")
	require.True(t, ok)
	require.Equal(t, ":)", s.Alternative)
}
