package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrTooLarge          = errors.New("file too large")
	ErrEmpty             = errors.New("empty file")
	ErrUnreadable        = errors.New("file could not be read as a document")
)

// Kind of uploaded document.
type Kind string

const (
	KindResume Kind = "resume"
	KindVideo  Kind = "video"
)

// Policy restricts what can be uploaded for a kind.
type Policy struct {
	Extensions []string
	MaxBytes   int64
}

var policies = map[Kind]Policy{
	KindResume: {Extensions: []string{".pdf", ".docx"}, MaxBytes: 15 << 20},
	KindVideo:  {Extensions: []string{".mp4", ".webm", ".mov"}, MaxBytes: 100 << 20},
}

// PolicyFor returns the upload policy of a kind.
func PolicyFor(k Kind) Policy { return policies[k] }

// Check validates filename extension and size against the kind's policy
// and returns the normalized extension.
func Check(k Kind, filename string, size int64) (string, error) {
	p, ok := policies[k]
	if !ok {
		return "", fmt.Errorf("%w: unknown kind %q", ErrUnsupportedFormat, k)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range p.Extensions {
		if e == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fmt.Errorf("%w: only %s are allowed", ErrUnsupportedFormat, strings.Join(p.Extensions, ", "))
	}
	if size <= 0 {
		return "", ErrEmpty
	}
	if size > p.MaxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, p.MaxBytes)
	}
	return ext, nil
}

// ReadAtMost reads r fully, failing when more than max bytes are available.
func ReadAtMost(r io.Reader, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, max)
	}
	return b, nil
}

// ExtractText extracts plain text from a resume (.pdf or .docx).
// Content that does not parse as the named format yields ErrUnreadable.
func ExtractText(filename string, data []byte) (string, error) {
	var (
		txt string
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		txt, err = extractTextFromPDF(data)
	case ".docx":
		txt, err = extractTextFromDocx(data)
	default:
		return "", fmt.Errorf("%w: only pdf and docx contain text", ErrUnsupportedFormat)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return txt, nil
}

func extractTextFromPDF(data []byte) (_ string, err error) {
	// ledongthuc/pdf panics on some malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

var (
	reTags    = regexp.MustCompile(`<[^>]+>`)
	reBlanks  = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewline = regexp.MustCompile(`\n+`)
	reLineGap = regexp.MustCompile(` *\n *`)
)

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Paragraph boundaries become newlines.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, "")
	return normalizeWhitespace(unescapeXML(txt)), nil
}

var xmlEntities = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")

func unescapeXML(s string) string { return xmlEntities.Replace(s) }

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = reBlanks.ReplaceAllString(s, " ")
	s = reLineGap.ReplaceAllString(s, "\n")
	s = reNewline.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
