package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx assembles a minimal .docx archive with one paragraph per input
// string.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		xmlEscape(&body, p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`</Types>`,
		"word/document.xml": body.String(),
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func xmlEscape(buf *bytes.Buffer, s string) {
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
}

func TestText_TxtPassthrough(t *testing.T) {
	got, err := Text([]byte("  Python developer\n5 years experience  "), "txt")
	require.NoError(t, err)
	assert.Equal(t, "Python developer\n5 years experience", got)
}

func TestText_ExtensionNormalization(t *testing.T) {
	data := []byte("plain text resume")

	for _, ext := range []string{"txt", ".txt", "TXT", ".TXT", " .txt "} {
		got, err := Text(data, ext)
		require.NoError(t, err, "extension %q", ext)
		assert.Equal(t, "plain text resume", got)
	}
}

func TestText_UnsupportedFormat(t *testing.T) {
	_, err := Text([]byte("irrelevant"), ".odt")
	require.Error(t, err)

	var ufErr *UnsupportedFormatError
	require.True(t, errors.As(err, &ufErr))
	assert.Equal(t, "odt", ufErr.Extension)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestText_EmptyTxt(t *testing.T) {
	_, err := Text([]byte("   \n\t  "), "txt")
	require.Error(t, err)

	var emptyErr *EmptyExtractionError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestText_Docx(t *testing.T) {
	data := buildDocx(t, "John Smith", "Skills: Python, Docker & Kubernetes", "5 years of experience")

	got, err := Text(data, "docx")
	require.NoError(t, err)
	assert.Contains(t, got, "John Smith")
	assert.Contains(t, got, "Python, Docker & Kubernetes")
	assert.Contains(t, got, "5 years of experience")
}

func TestText_DocxParagraphsSeparated(t *testing.T) {
	data := buildDocx(t, "first line", "second line")

	got, err := Text(data, "docx")
	require.NoError(t, err)
	assert.Contains(t, got, "first line\nsecond line")
}

func TestText_DocxEmptyDocument(t *testing.T) {
	data := buildDocx(t)

	_, err := Text(data, "docx")
	require.Error(t, err)

	var emptyErr *EmptyExtractionError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestText_DocxCorruptArchive(t *testing.T) {
	_, err := Text([]byte("not a zip archive"), "docx")
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Error(t, readErr.Unwrap())
}

func TestText_PdfCorrupt(t *testing.T) {
	_, err := Text([]byte("%PDF-1.4 truncated garbage"), "pdf")
	assert.Error(t, err)
}

func TestFlattenWordML_TextOutsideWTIgnored(t *testing.T) {
	const ml = `<w:document><w:body>` +
		`<w:p><w:pPr>style noise</w:pPr><w:r><w:t>kept text</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := flattenWordML(ml)
	assert.Contains(t, got, "kept text")
	assert.NotContains(t, got, "style noise")
}

func TestFlattenWordML_MalformedInputSalvaged(t *testing.T) {
	got := flattenWordML(`<w:p><w:r><w:t>partial</w:t></w:r></w:p><broken`)
	assert.Contains(t, got, "partial")
}
