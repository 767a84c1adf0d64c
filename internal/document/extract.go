package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText reads a resume file and converts it to plain text according to
// its detected format. Every failure is returned as an *ExtractionError
// carrying the file path.
func ExtractText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read resume file", Cause: err}
	}

	text, err := ExtractTextFromBytes(ctx, data, DetectFormat(path))
	if err != nil {
		var extErr *ExtractionError
		if errors.As(err, &extErr) {
			extErr.Path = path
			return "", extErr
		}
		return "", &ExtractionError{Path: path, Message: "extraction failed", Cause: err}
	}
	return text, nil
}

// ExtractTextFromBytes converts in-memory resume content to plain text.
// The plain-text path is best-effort and never fails: invalid byte sequences
// are replaced rather than aborting the pipeline.
func ExtractTextFromBytes(ctx context.Context, data []byte, format Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &ExtractionError{Message: "extraction canceled", Cause: err}
	}

	switch format {
	case FormatPDF:
		text, err := extractPDF(ctx, data)
		if err != nil {
			return "", &ExtractionError{Message: "failed to extract pdf text", Cause: err}
		}
		return text, nil
	case FormatDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", &ExtractionError{Message: "failed to extract docx text", Cause: err}
		}
		return text, nil
	default:
		return decodePlainText(data), nil
	}
}

// extractPDF concatenates the text layer of every page into one string.
// The pdf reader panics on some malformed files, so the panic is converted
// into an ordinary error here.
func extractPDF(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages whose glyph maps cannot be decoded are skipped; the rest of
		// the document is still worth extracting.
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// xmlTagPattern strips word-processing markup after paragraph boundaries
// have been turned into newlines.
var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxToPlainText(doc.Editable().GetContent()), nil
}

// docxToPlainText flattens the document XML into raw text. Paragraph closes
// become newlines so line-oriented signals (contact headers, date ranges)
// keep their structure.
func docxToPlainText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return strings.TrimSpace(html.UnescapeString(content))
}

// decodePlainText decodes bytes as UTF-8, substituting the replacement
// character for invalid sequences instead of failing.
func decodePlainText(data []byte) string {
	text := string(data)
	if utf8.ValidString(text) {
		return text
	}
	return strings.ToValidUTF8(text, "�")
}
