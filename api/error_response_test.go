package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func newRequestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidators(v))
	return v
}

func TestExtractErrorFields_NonValidationError(t *testing.T) {
	require.Empty(t, ExtractErrorFields(errors.New("unexpected EOF")))
}

func TestExtractErrorFields_RenderRequest(t *testing.T) {
	v := newRequestValidator(t)
	valid := RenderRequest{Text: "forum:x", Format: "html"}

	testCases := []struct {
		name   string
		modify func(req *RenderRequest)
		want   []ErrorField
	}{
		{
			name:   "Valid",
			modify: func(req *RenderRequest) {},
		},
		{
			name:   "MissingText",
			modify: func(req *RenderRequest) { req.Text = "" },
			want:   []ErrorField{{FieldName: "text", ErrorMessage: "this field is required"}},
		},
		{
			name:   "MissingFormat",
			modify: func(req *RenderRequest) { req.Format = "" },
			want:   []ErrorField{{FieldName: "format", ErrorMessage: "this field is required"}},
		},
		{
			name:   "UnknownFormat",
			modify: func(req *RenderRequest) { req.Format = "abstract:pdf" },
			want:   []ErrorField{{FieldName: "format", ErrorMessage: "unknown render format"}},
		},
		{
			name:   "LongBaseURL",
			modify: func(req *RenderRequest) { req.BaseURL = "http://" + strings.Repeat("x", 200) },
			want:   []ErrorField{{FieldName: "base_url", ErrorMessage: "value is too long"}},
		},
		{
			name:   "NegativeQuoteMessageID",
			modify: func(req *RenderRequest) { req.QuoteMessageID = -5 },
			want:   []ErrorField{{FieldName: "quote_message_id", ErrorMessage: "must not be negative"}},
		},
		{
			name: "SeveralFields",
			modify: func(req *RenderRequest) {
				req.Text = ""
				req.QuoteAuthor = strings.Repeat("b", 101)
			},
			want: []ErrorField{
				{FieldName: "text", ErrorMessage: "this field is required"},
				{FieldName: "quote_author", ErrorMessage: "value is too long"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.modify(&req)

			err := v.Struct(req)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Equal(t, tc.want, ExtractErrorFields(err))
		})
	}
}

func TestExtractErrorFields_CheckRequest(t *testing.T) {
	v := newRequestValidator(t)

	testCases := []struct {
		name string
		req  CheckRequest
		want []ErrorField
	}{
		{"Valid", CheckRequest{Text: "[b]x", Flags: "LS"}, nil},
		{"NoFlags", CheckRequest{Text: "[b]x"}, nil},
		{"FlagsNotLetters", CheckRequest{Text: "x", Flags: "L+S"}, []ErrorField{{FieldName: "flags", ErrorMessage: "must contain only letters"}}},
		{"TooManyFlags", CheckRequest{Text: "x", Flags: "LSLSLSLSL"}, []ErrorField{{FieldName: "flags", ErrorMessage: "value is too long"}}},
		{"MissingText", CheckRequest{}, []ErrorField{{FieldName: "text", ErrorMessage: "this field is required"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Equal(t, tc.want, ExtractErrorFields(err))
		})
	}
}

func TestGetBindingErrorMessage_UnlistedTag(t *testing.T) {
	v := newRequestValidator(t)

	type lookup struct {
		Login string `json:"login" binding:"lowercase"`
	}
	err := v.Struct(lookup{Login: "Bob"})
	require.Equal(t, []ErrorField{{FieldName: "login", ErrorMessage: "invalid input"}}, ExtractErrorFields(err))
}

func TestRenderFormatValidator(t *testing.T) {
	v := newRequestValidator(t)

	for _, format := range []string{"html", "forumLS", "quote:noquote:mail", "force:news", "text", "raw", "format"} {
		require.NoError(t, v.Struct(RenderRequest{Text: "x", Format: format}), format)
	}

	for _, format := range []string{"pdf", "code", "quote:", "HTML", "bogus:html"} {
		err := v.Struct(RenderRequest{Text: "x", Format: format})
		require.Equal(t, []ErrorField{{FieldName: "format", ErrorMessage: "unknown render format"}}, ExtractErrorFields(err), format)
	}
}

func TestExtractErrorFromBuffer(t *testing.T) {
	want := NewErrorResponse(ErrInvalidParams, ErrorField{FieldName: "format", ErrorMessage: "unknown render format"})

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(want))

	got, err := extractErrorFromBuffer(&buf)
	require.NoError(t, err)
	require.Equal(t, want, *got)

	_, err = extractErrorFromBuffer(bytes.NewBufferString("{"))
	require.Error(t, err)
}
