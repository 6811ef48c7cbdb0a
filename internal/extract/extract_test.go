package extract

import (
	"strings"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{name: "pdf", contentType: "application/pdf", want: true},
		{name: "docx", contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", want: true},
		{name: "pdf with charset", contentType: "application/pdf; charset=utf-8", want: true},
		{name: "plain text", contentType: "text/plain", want: false},
		{name: "legacy doc", contentType: "application/msword", want: false},
		{name: "empty", contentType: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supported(tt.contentType); got != tt.want {
				t.Fatalf("Supported(%q) = %v, want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestExtensionFor(t *testing.T) {
	if got := ExtensionFor("application/pdf"); got != ".pdf" {
		t.Fatalf("pdf extension = %q", got)
	}
	if got := ExtensionFor("application/vnd.openxmlformats-officedocument.wordprocessingml.document"); got != ".docx" {
		t.Fatalf("docx extension = %q", got)
	}
	if got := ExtensionFor("text/plain"); got != "" {
		t.Fatalf("expected empty extension, got %q", got)
	}
}

func TestTextRejectsUnsupportedType(t *testing.T) {
	if _, err := Text([]byte("hello"), "text/plain"); err == nil {
		t.Fatal("expected error for unsupported content type")
	}
}

func TestTextRejectsGarbagePDF(t *testing.T) {
	if _, err := Text([]byte("not a pdf at all"), "application/pdf"); err == nil {
		t.Fatal("expected error for malformed pdf data")
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Software Engineer</w:t></w:r><w:br/><w:r><w:t>Go, Postgres</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := StripDocxXML(raw)
	want := "Jane Doe\nSoftware Engineer\nGo, Postgres"
	if got != want {
		t.Fatalf("StripDocxXML = %q, want %q", got, want)
	}
}

func TestStripDocxXMLReturnsInputOnBadXML(t *testing.T) {
	raw := "<w:p>unclosed"
	if got := StripDocxXML(raw); !strings.Contains(got, "unclosed") {
		t.Fatalf("expected raw passthrough on malformed xml, got %q", got)
	}
}
