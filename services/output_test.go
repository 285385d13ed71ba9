package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   string
	}{
		{
			name:   "bare payload",
			stdout: `{"aqi":42}`,
			want:   `{"aqi":42}`,
		},
		{
			name:   "payload with trailing newline",
			stdout: "{\"aqi\":42}\n",
			want:   `{"aqi":42}`,
		},
		{
			name:   "leading warning line",
			stdout: "warning: deprecated\n{\"aqi\":42,\"pm25\":10,\"pm10\":20,\"no2\":5,\"so2\":1,\"co\":0.5}\n",
			want:   `{"aqi":42,"pm25":10,"pm10":20,"no2":5,"so2":1,"co":0.5}`,
		},
		{
			name:   "many noise lines before payload",
			stdout: "Warning: Untrained model in use.\nDeprecationWarning: blah\n\n[{\"time\":\"Day 1\",\"aqi\":90}]\n",
			want:   `[{"time":"Day 1","aqi":90}]`,
		},
		{
			name:   "trailing blank lines after payload",
			stdout: "{\"aqi\":1}\n\n   \n",
			want:   `{"aqi":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, ierr := ExtractPayload([]byte(tt.stdout))
			require.Nil(t, ierr)
			assert.Equal(t, tt.want, string(raw))
		})
	}
}

func TestExtractPayloadMalformed(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		wantDiag string
	}{
		{
			name:     "plain text",
			stdout:   "not json at all\n",
			wantDiag: "not json at all",
		},
		{
			name:     "empty stdout",
			stdout:   "",
			wantDiag: "model produced no output",
		},
		{
			name:     "whitespace only",
			stdout:   "  \n\n",
			wantDiag: "model produced no output",
		},
		{
			// The contract is one compact JSON value on the final line;
			// pretty-printed output loses everything but the closing brace.
			name:     "pretty printed json",
			stdout:   "{\n  \"aqi\": 42\n}\n",
			wantDiag: "{\n  \"aqi\": 42\n}",
		},
		{
			name:     "valid payload followed by noise",
			stdout:   "{\"aqi\":42}\ntraceback: something broke\n",
			wantDiag: "{\"aqi\":42}\ntraceback: something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, ierr := ExtractPayload([]byte(tt.stdout))
			require.NotNil(t, ierr)
			assert.Nil(t, raw)
			assert.Equal(t, ErrKindMalformedOutput, ierr.Kind)
			assert.Equal(t, tt.wantDiag, ierr.Diagnostic)
		})
	}
}
