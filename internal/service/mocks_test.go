package service

import (
	"bytes"
	"context"
	"fmt"

	"talent-site-api/internal/domain"
)

type MockLogger struct {
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.messages = append(m.messages, "INFO: "+msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	if err == nil {
		m.messages = append(m.messages, "ERROR: "+msg)
		return
	}
	m.messages = append(m.messages, "ERROR: "+msg+" - "+err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.messages = append(m.messages, "DEBUG: "+msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.messages = append(m.messages, "WARN: "+msg)
}

// stubPageCounter returns a fixed page count or error.
type stubPageCounter struct {
	pages       int
	err         error
	shouldPanic bool
	calls       int
}

func (s *stubPageCounter) CountPages(data []byte) (int, error) {
	s.calls++
	if s.shouldPanic {
		panic("unexpected token")
	}
	return s.pages, s.err
}

type stubDocxConverter struct {
	html  string
	err   error
	calls int
}

func (s *stubDocxConverter) ConvertToHTML(data []byte) (string, error) {
	s.calls++
	return s.html, s.err
}

type stubPDFExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubPDFExtractor) ExtractText(data []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

type MockLeadRepository struct {
	leads []*domain.Lead
	err   error
}

func (m *MockLeadRepository) Store(ctx context.Context, lead *domain.Lead) error {
	if m.err != nil {
		return m.err
	}
	m.leads = append(m.leads, lead)
	return nil
}

// buildPDF writes a minimal but well-formed PDF with the given number of pages.
// Every page shares one content stream that shows text with a Tj operator.
func buildPDF(pageCount int, text string) []byte {
	var objs []string
	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")

	contentID := 3 + pageCount
	kids := ""
	for i := 0; i < pageCount; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+i)
	}
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, pageCount))
	for i := 0; i < pageCount; i++ {
		objs = append(objs, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R >>", contentID))
	}
	stream := "BT /F1 12 Tf 72 712 Td (" + text + ") Tj ET"
	objs = append(objs, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xrefOffset)
	return buf.Bytes()
}
