package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ErrNoDocumentBody is returned when a docx archive has no
// word/document.xml entry.
var ErrNoDocumentBody = errors.New("docx: no document body")

// docxExtractor reads the main document part of a docx archive.
// langchaingo ships no docx loader, so this walks the OOXML directly:
// a docx file is a zip whose word/document.xml carries the text in
// <w:t> runs grouped into <w:p> paragraphs.
type docxExtractor struct{}

func (docxExtractor) Extract(ctx context.Context, path string) ([]string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		body, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer body.Close()

		text, err := documentText(body)
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	}

	return nil, ErrNoDocumentBody
}

// documentText extracts the concatenated run text from document.xml,
// inserting a newline at each paragraph boundary.
func documentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				sb.Write(t)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
