package analyzer

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extract converts document bytes into plain text, dispatching on the
// filename extension. A failed .docx or .pdf parse falls back to
// decoding the raw bytes as UTF-8 with invalid sequences dropped, so
// the result is always a string, possibly empty — Extract never
// returns an error. Downstream stages accept empty input and produce
// degenerate results instead of failing.
func Extract(data []byte, filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		if text, err := extractDocxText(data); err == nil {
			return text
		}
	case ".pdf":
		if text, err := extractPDFText(data); err == nil {
			return text
		}
	}
	return strings.ToValidUTF8(string(data), "")
}

func extractPDFText(data []byte) (text string, err error) {
	// the pdf package panics on some malformed inputs; absorb and
	// let the caller fall back to the raw decode
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, _ := page.GetPlainText(nil)
		textBuilder.WriteString(pageText)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docx parse panic: %v", r)
		}
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxParagraphText(doc.Editable().GetContent()), nil
}

var docxTagRe = regexp.MustCompile(`<[^>]*>`)

// docxParagraphText flattens WordprocessingML into plain text:
// paragraph closers become line breaks, every remaining tag is
// dropped and XML entities are unescaped.
func docxParagraphText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(strings.TrimRight(content, "\n"))
}
