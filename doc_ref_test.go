package systemctl

import (
	"errors"
	"testing"
)

func TestParseDoc(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Doc
		wantErr bool
	}{
		{
			name: "man page with section",
			line: "man:cron(8)",
			want: Doc{Kind: DocMan, Ref: "cron"},
		},
		{
			name: "man page without section",
			line: "man:crontab",
			want: Doc{Kind: DocMan, Ref: "crontab"},
		},
		{
			name: "http url",
			line: "http://example.org/cron",
			want: Doc{Kind: DocURL, Ref: "http://example.org/cron"},
		},
		{
			name: "https url",
			line: "https://example.org/cron",
			want: Doc{Kind: DocURL, Ref: "https://example.org/cron"},
		},
		{
			name: "https url with surrounding whitespace payload",
			line: "https: //example.org/cron",
			want: Doc{Kind: DocURL, Ref: "https://example.org/cron"},
		},
		{
			name:    "unknown scheme",
			line:    "info:cron",
			wantErr: true,
		},
		{
			name:    "no separator",
			line:    "just some text",
			wantErr: true,
		},
		{
			name:    "two separators",
			line:    "man:cron:extra",
			wantErr: true,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDoc(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDoc(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedDoc) {
					t.Errorf("ParseDoc(%q) error = %v, want ErrMalformedDoc", tt.line, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDoc(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDocAccessors(t *testing.T) {
	man := Doc{Kind: DocMan, Ref: "cron"}
	if ref, ok := man.AsMan(); !ok || ref != "cron" {
		t.Errorf("AsMan() = %q, %v", ref, ok)
	}
	if _, ok := man.AsURL(); ok {
		t.Error("AsURL() on a man doc reported ok")
	}

	url := Doc{Kind: DocURL, Ref: "https://example.org"}
	if ref, ok := url.AsURL(); !ok || ref != "https://example.org" {
		t.Errorf("AsURL() = %q, %v", ref, ok)
	}
	if _, ok := url.AsMan(); ok {
		t.Error("AsMan() on a url doc reported ok")
	}
}

func FuzzParseDoc(f *testing.F) {
	f.Add("man:cron(8)")
	f.Add("https://example.org/cron")
	f.Add("http:")
	f.Add(":::")
	f.Add("man:")

	f.Fuzz(func(t *testing.T, line string) {
		doc, err := ParseDoc(line)
		if err != nil {
			return
		}
		// Every parsed doc carries a well-formed variant.
		switch doc.Kind {
		case DocMan:
		case DocURL:
			if doc.Ref == "" {
				t.Errorf("DocURL with empty ref from %q", line)
			}
		default:
			t.Errorf("unknown doc kind %v from %q", doc.Kind, line)
		}
	})
}
