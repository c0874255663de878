package labels

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF        = "application/pdf"
	maxIngredients = 100
	maxTokenLen    = 80
)

// ingredientMarkers are the label section headers that introduce an INCI
// list, in the languages the product catalogs actually ship with.
var ingredientMarkers = []string{"ingredients:", "ingredients :", "inci:", "состав:"}

// ExtractIngredients pulls the ingredient list out of an uploaded label
// payload. PDFs go through text extraction first; anything else is
// treated as plain text.
func ExtractIngredients(ctx context.Context, data []byte, mimeType string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := string(data)
	if strings.HasPrefix(mimeType, mimePDF) {
		extracted, err := extractPDFText(data)
		if err != nil {
			return nil, fmt.Errorf("extract pdf text: %w", err)
		}
		text = extracted
	}

	return ParseIngredientList(text), nil
}

// ParseIngredientList parses free label text into ingredient tokens.
// It looks for a known section marker; without one, text that already
// reads as a comma-separated list is accepted as-is. Unparseable text
// yields an empty list, never an error.
func ParseIngredientList(text string) []string {
	lowered := strings.ToLower(text)

	section := ""
	for _, marker := range ingredientMarkers {
		if idx := strings.Index(lowered, marker); idx >= 0 {
			section = text[idx+len(marker):]
			break
		}
	}

	if section == "" {
		if strings.Count(text, ",") >= 2 {
			section = text
		} else {
			return []string{}
		}
	}

	// The list runs until the first blank line.
	if idx := strings.Index(section, "\n\n"); idx >= 0 {
		section = section[:idx]
	}
	section = strings.TrimSuffix(strings.TrimSpace(section), ".")

	splitter := func(r rune) bool {
		return r == ',' || r == ';' || r == '·' || r == '•'
	}

	tokens := strings.FieldsFunc(section, splitter)
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		cleaned := strings.Join(strings.Fields(token), " ")
		if cleaned == "" || len(cleaned) > maxTokenLen {
			continue
		}
		key := strings.ToLower(cleaned)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cleaned)
		if len(out) >= maxIngredients {
			break
		}
	}
	return out
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
