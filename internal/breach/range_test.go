package breach

import (
	"errors"
	"strings"
	"testing"
)

func TestHashParts(t *testing.T) {
	prefix, suffix := HashParts(knownPassword)
	if prefix != knownPrefix {
		t.Errorf("prefix = %q, want %q", prefix, knownPrefix)
	}
	if suffix != knownSuffix {
		t.Errorf("suffix = %q, want %q", suffix, knownSuffix)
	}
	if len(prefix)+len(suffix) != 40 {
		t.Errorf("digest length = %d, want 40", len(prefix)+len(suffix))
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{name: "match", body: "AAAA:1\n" + knownSuffix + ":42\n", want: 42},
		{name: "lowercase match", body: strings.ToLower(knownSuffix) + ":7", want: 7},
		{name: "crlf and spaces", body: "AAAA:1\r\n " + knownSuffix + ": 5 \r\n", want: 5},
		{name: "no match", body: "AAAA:1\nBBBB:2", want: 0},
		{name: "empty body", body: "", want: 0},
		{name: "blank lines", body: "\n\n" + knownSuffix + ":3\n\n", want: 3},
		{name: "padding", body: knownSuffix + ":0", want: 0},
		{name: "missing colon", body: "AAAA\n" + knownSuffix + ":3", wantErr: ErrMalformedRecord},
		{name: "bad count", body: knownSuffix + ":x", wantErr: ErrMalformedRecord},
		{name: "negative count", body: knownSuffix + ":-1", wantErr: ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(strings.NewReader(tt.body), knownSuffix)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseRange() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRange() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRange() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResultStatus(t *testing.T) {
	if s := Unknown().Status.String(); s != "unknown" {
		t.Errorf("Unknown().Status = %q", s)
	}
	if s := Clean().Status.String(); s != "clean" {
		t.Errorf("Clean().Status = %q", s)
	}
	if s := Breached(3).Status.String(); s != "breached" {
		t.Errorf("Breached().Status = %q", s)
	}
}
