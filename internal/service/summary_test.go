package service

import (
	"strings"
	"testing"

	"talent-site-api/internal/domain"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "first heading",
			html: "<p>Intro text.</p>\n<h2>Experience</h2>\n<h1>Later</h1>",
			want: "Experience",
		},
		{
			name: "heading with inner tags",
			html: "<h1>Senior <strong>Recruiter</strong></h1>",
			want: "Senior Recruiter",
		},
		{
			name: "empty heading is skipped",
			html: "<h1> </h1><h3>Skills</h3>",
			want: "Skills",
		},
		{
			name: "paragraph only",
			html: "<p>Short intro.</p><p>Second.</p>",
			want: "Short intro.",
		},
		{
			// Paragraph titles are cut at 50 characters
			name: "long paragraph",
			html: "<p>" + strings.Repeat("x", 60) + "</p>",
			want: strings.Repeat("x", 50) + "...",
		},
		{
			name: "exactly 50 chars",
			html: "<p>" + strings.Repeat("y", 50) + "</p>",
			want: strings.Repeat("y", 50),
		},
		{
			name: "entities decoded",
			html: "<h2>R&amp;D Hiring</h2>",
			want: "R&D Hiring",
		},
		{name: "list only", html: "<ul><li>One</li></ul>", want: domain.UntitledDocument},
		{name: "empty", html: "", want: domain.UntitledDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTitle(tt.html); got != tt.want {
				t.Fatalf("DeriveTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveExcerpt_Truncation(t *testing.T) {
	long := strings.Repeat("abcde ", 50) // 300 chars before trimming

	got := DeriveExcerpt("<p>" + long + "</p>")
	wantBody := strings.TrimSpace(long)[:200]
	if got != wantBody+"..." {
		t.Fatalf("unexpected excerpt: %q", got)
	}
	if len([]rune(got)) != 203 {
		t.Fatalf("expected 203 characters, got %d", len([]rune(got)))
	}
}

func TestDeriveExcerpt_ShortText(t *testing.T) {
	text := strings.Repeat("z", 200)

	got := DeriveExcerpt("<p>" + text + "</p>")
	if got != text {
		t.Fatalf("expected untruncated excerpt, got %q", got)
	}
}

func TestDeriveExcerpt_CollapsesWhitespace(t *testing.T) {
	got := DeriveExcerpt("<p>  Hiring\n\n made   <em>simple</em> </p>\n<ul>\n<li>Fast</li>\n<li>Fair</li>\n</ul>")
	if got != "Hiring made simple Fast Fair" {
		t.Fatalf("unexpected excerpt: %q", got)
	}
}

func TestDeriveExcerpt_Headings(t *testing.T) {
	got := DeriveExcerpt("<h1>Experience</h1>\n<p>5 years of engineering.</p>")
	if got != "5 years of engineering." {
		t.Fatalf("expected heading to be left out, got %q", got)
	}

	// PDF output marks short lines as h2.
	got = DeriveExcerpt("<h2>Intro line</h2>\n<p>Body text here.</p>")
	if got != "Body text here." {
		t.Fatalf("expected h2 to be left out, got %q", got)
	}

	got = DeriveExcerpt("<h2>Only a heading</h2>")
	if got != "Only a heading" {
		t.Fatalf("expected heading text when nothing else exists, got %q", got)
	}

	if got := DeriveExcerpt(""); got != "" {
		t.Fatalf("expected empty excerpt, got %q", got)
	}
}
