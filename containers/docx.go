package containers

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	serrors "github.com/dargueta/shrink/errors"
)

// DocumentPartName is the archive member holding the body of a DOCX document.
const DocumentPartName = "word/document.xml"

// wordNamespace is the namespace of the WordprocessingML elements we look at.
const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// ReadDOCX returns the XML text of the document body of a DOCX file. The
// markup is kept; only the archive is unpacked.
func ReadDOCX(data []byte) (string, error) {
	part, err := readDocumentPart(data)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(part) {
		return "", serrors.ErrUnsupportedContainer.WithMessage(
			DocumentPartName + " is not valid UTF-8")
	}
	return string(part), nil
}

// DOCXParagraphs returns the plain text of each paragraph in a DOCX file.
// Tabs and line breaks inside a paragraph are kept as '\t' and '\n'.
func DOCXParagraphs(data []byte) ([]string, error) {
	part, err := readDocumentPart(data)
	if err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(bytes.NewReader(part))
	paragraphs := []string{}
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return paragraphs, nil
		} else if err != nil {
			return nil, serrors.ErrUnsupportedContainer.Wrap(err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			if element.Name.Space != wordNamespace {
				continue
			}
			switch element.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			if element.Name.Space != wordNamespace {
				continue
			}
			switch element.Name.Local {
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(element)
			}
		}
	}
}

func readDocumentPart(data []byte) ([]byte, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, serrors.ErrUnsupportedContainer.Wrap(err)
	}

	member, err := archive.Open(DocumentPartName)
	if err != nil {
		return nil, serrors.ErrUnsupportedContainer.Wrap(err)
	}
	defer member.Close()

	part, err := io.ReadAll(member)
	if err != nil {
		return nil, serrors.ErrUnsupportedContainer.Wrap(err)
	}
	return part, nil
}
