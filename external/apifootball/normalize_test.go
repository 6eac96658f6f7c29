package apifootball

import (
	"testing"
	"time"
)

func TestParseProviderDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "rfc3339 with offset", in: "2025-05-10T16:30:00-03:00", want: time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC)},
		{name: "rfc3339 utc", in: "2025-05-10T19:30:00Z", want: time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC)},
		{name: "date only", in: "2025-05-10", want: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "blank", in: "  ", want: time.Time{}},
		{name: "garbage", in: "next tuesday", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseProviderDate(tt.in)
			if !got.Equal(tt.want) {
				t.Fatalf("parseProviderDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProviderErrorsUnmarshal(t *testing.T) {
	var e providerErrors
	if err := e.UnmarshalJSON([]byte(`[]`)); err != nil || len(e) != 0 {
		t.Fatalf("empty array: err=%v len=%d", err, len(e))
	}
	if err := e.UnmarshalJSON([]byte(`{"rateLimit":"Too many requests"}`)); err != nil {
		t.Fatalf("object form: %v", err)
	}
	if len(e) != 1 || e[0] != "rateLimit: Too many requests" {
		t.Fatalf("unexpected messages: %v", e)
	}
}
