package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frenchreborn/internal/pkg/errs"
	"frenchreborn/internal/pkg/req"
)

type sampleInput struct {
	Name string `json:"name" validate:"required,max=10"`
}

func newRequest(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantCode    int
	}{
		{"valid", `{"name":"ok"}`, "application/json", 0},
		{"charset suffix", `{"name":"ok"}`, "application/json; charset=utf-8", 0},
		{"wrong content type", `{"name":"ok"}`, "text/plain", errs.ErrUnsupportedMediaType},
		{"malformed", `{"name":`, "application/json", errs.ErrInvalidJSONFormat},
		{"unknown field", `{"name":"ok","role":"owner"}`, "application/json", errs.ErrInvalidJSONFormat},
		{"trailing data", `{"name":"ok"}{"name":"x"}`, "application/json", errs.ErrExtraContentInBody},
		{"missing required", `{}`, "application/json", errs.ErrInvalidParams},
		{"too long", `{"name":"abcdefghijk"}`, "application/json", errs.ErrInvalidParams},
		{"too large", `{"name":"` + strings.Repeat("a", int(req.MaxJSONBodySize)) + `"}`, "application/json", errs.ErrRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input sampleInput
			customErr := req.BindJSON(httptest.NewRecorder(), newRequest(tt.body, tt.contentType), &input)
			if tt.wantCode == 0 {
				require.Nil(t, customErr)
				assert.Equal(t, "ok", input.Name)
				return
			}
			require.NotNil(t, customErr)
			assert.Equal(t, tt.wantCode, customErr.Code)
		})
	}
}

func TestInt64Param(t *testing.T) {
	id, customErr := req.Int64Param("42")
	require.Nil(t, customErr)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		_, customErr := req.Int64Param(raw)
		assert.NotNil(t, customErr, raw)
	}
}
