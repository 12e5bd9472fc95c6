package service

import (
	"errors"
	"testing"

	"talent-site-api/internal/domain"
)

func TestWordConverter_ConvertToHTML(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "heading and paragraph",
			body: experienceDocx,
			want: "<h1>Experience</h1>\n<p>5 years of engineering.</p>",
		},
		{
			name: "bold and italic runs",
			body: `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Lead</w:t></w:r>` +
				`<w:r><w:t xml:space="preserve"> recruiter, </w:t></w:r>` +
				`<w:r><w:rPr><w:i/><w:b w:val="false"/></w:rPr><w:t>remote</w:t></w:r></w:p>`,
			want: "<p><strong>Lead</strong> recruiter, <em>remote</em></p>",
		},
		{
			name: "numbered paragraphs become a list",
			body: `<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>Go</w:t></w:r></w:p>` +
				`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/></w:pPr><w:r><w:t>SQL</w:t></w:r></w:p>` +
				`<w:p><w:r><w:t>Done.</w:t></w:r></w:p>`,
			want: "<ul>\n<li>Go</li>\n<li>SQL</li>\n</ul>\n<p>Done.</p>",
		},
		{
			name: "title and subtitle styles",
			body: `<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Resume</w:t></w:r></w:p>` +
				`<w:p><w:pPr><w:pStyle w:val="Subtitle"/></w:pPr><w:r><w:t>Backend</w:t></w:r></w:p>`,
			want: "<h1>Resume</h1>\n<h2>Backend</h2>",
		},
		{
			name: "markup is escaped",
			body: `<w:p><w:r><w:t>R&amp;D &lt;team&gt;</w:t></w:r></w:p>`,
			want: "<p>R&amp;D &lt;team&gt;</p>",
		},
		{
			name: "breaks and tabs",
			body: `<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line</w:t><w:tab/><w:t>two</w:t></w:r></w:p>`,
			want: "<p>Line one<br>Line two</p>",
		},
		{
			name: "text box rendered once",
			body: `<w:p><w:r><w:t xml:space="preserve">Before </w:t></w:r>` +
				`<w:r><mc:AlternateContent xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006">` +
				`<mc:Choice Requires="wps"><w:drawing><wps:txbx xmlns:wps="http://schemas.microsoft.com/office/word/2010/wordprocessingShape">` +
				`<w:txbxContent><w:p><w:r><w:t>Boxed</w:t></w:r></w:p></w:txbxContent></wps:txbx></w:drawing></mc:Choice>` +
				`<mc:Fallback><w:pict><w:txbxContent><w:p><w:r><w:t>Boxed</w:t></w:r></w:p></w:txbxContent></w:pict></mc:Fallback>` +
				`</mc:AlternateContent></w:r>` +
				`<w:r><w:t xml:space="preserve"> after.</w:t></w:r></w:p>`,
			want: "<p>Before Boxed after.</p>",
		},
		{
			name: "text inside a run before a nested text box keeps its order",
			body: `<w:p><w:r><w:t>Lead</w:t><w:drawing><w:txbxContent><w:p><w:r><w:t>Box</w:t></w:r></w:p></w:txbxContent></w:drawing>` +
				`<w:t>Tail</w:t></w:r></w:p>`,
			want: "<p>LeadBoxTail</p>",
		},
		{
			name: "empty paragraphs are dropped",
			body: `<w:p></w:p><w:p><w:r><w:t>   </w:t></w:r></w:p><w:p><w:r><w:t>Kept</w:t></w:r></w:p>`,
			want: "<p>Kept</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converter := NewWordConverter(NewMockLogger())

			got, err := converter.ConvertToHTML(buildDocx(t, wordBody(tt.body)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ConvertToHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWordConverter_InvalidInput(t *testing.T) {
	converter := NewWordConverter(NewMockLogger())

	if _, err := converter.ConvertToHTML(nil); !errors.Is(err, domain.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := converter.ConvertToHTML([]byte("this is not a zip archive")); err == nil {
		t.Fatal("expected error for non-zip payload")
	}
}

func TestRenderDocumentXML_Malformed(t *testing.T) {
	_, err := renderDocumentXML(wordBody(`<w:p><w:r><w:t>Broken</w:t></w:p>`))
	if err == nil {
		t.Fatal("expected error for mismatched tags")
	}
}

func TestDocxHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading 3", 3},
		{"Heading6", 6},
		{"Heading7", 0},
		{"Title", 1},
		{"Subtitle", 2},
		{"Normal", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := docxHeadingLevel(tt.style); got != tt.want {
			t.Fatalf("docxHeadingLevel(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}
