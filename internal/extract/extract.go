// Package extract converts uploaded resume documents (PDF, DOCX, plain
// text) into raw text. It owns no upload handling or storage decisions;
// callers hand it bytes plus the declared file extension.
package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Text dispatches on the file extension and returns the document's raw text.
// Extensions are matched case-insensitively, with or without the leading dot.
// An extractable document that yields no text returns *EmptyExtractionError.
func Text(data []byte, ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))

	var text string
	var err error
	switch ext {
	case "pdf":
		text, err = pdfText(data)
	case "doc", "docx":
		text, err = docxText(data)
	case "txt":
		text = string(data)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &EmptyExtractionError{Extension: ext}
	}
	return text, nil
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ReadError{Extension: "pdf", Cause: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ReadError{Extension: "docx", Cause: err}
	}
	defer doc.Close()

	return flattenWordML(doc.Editable().GetContent()), nil
}

// flattenWordML reduces WordprocessingML markup to plain text, one line per
// paragraph. Only character data inside <w:t> elements is document text.
func flattenWordML(content string) string {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Salvage whatever was decoded before the malformed region.
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String()
}
