package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// ExtractDocx extracts paragraph text from a Word document. The document
// body lives in word/document.xml inside the OOXML zip container; text runs
// are <w:t> elements and paragraphs are <w:p> elements.
func ExtractDocx(filePath string) (string, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open docx container: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document body: %w", err)
		}
		defer rc.Close()

		text, err := collectRuns(rc, "t", "p")
		if err != nil {
			return "", fmt.Errorf("failed to parse document body: %w", err)
		}
		return text, nil
	}

	return "", fmt.Errorf("docx container has no word/document.xml")
}

// ExtractPptx extracts text from every slide of a presentation. Slides are
// ppt/slides/slideN.xml; text runs use DrawingML <a:t> elements.
func ExtractPptx(filePath string) (string, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open pptx container: %w", err)
	}
	defer zr.Close()

	var parts []string
	for _, f := range zr.File {
		dir, base := path.Split(f.Name)
		if dir != "ppt/slides/" || !strings.HasPrefix(base, "slide") || !strings.HasSuffix(base, ".xml") {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open slide %s: %w", f.Name, err)
		}

		text, err := collectRuns(rc, "t", "")
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("failed to parse slide %s: %w", f.Name, err)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n"), nil
}

// collectRuns walks an OOXML part and concatenates the character data of
// every element with local name runElem. When blockElem is non-empty, a
// newline is emitted at the end of each such block element so paragraph
// structure survives extraction.
func collectRuns(r io.Reader, runElem, blockElem string) (string, error) {
	dec := xml.NewDecoder(r)

	var sb strings.Builder
	inRun := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == runElem {
				inRun++
			}
		case xml.EndElement:
			if t.Name.Local == runElem && inRun > 0 {
				inRun--
			}
			if blockElem != "" && t.Name.Local == blockElem {
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inRun > 0 {
				sb.Write(t)
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
