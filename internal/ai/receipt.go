package ai

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/localnerve/gestorinmo/internal/media"
	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/types"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNoJSON is returned when a reply holds no JSON object
var ErrNoJSON = errors.New("no JSON object in reply")

// ReceiptGuess is what the model read off a receipt. Nil fields were missing or unusable.
type ReceiptGuess struct {
	Amount      *float64                `json:"amount,omitempty"`
	Date        *string                 `json:"date,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Category    *models.ExpenseCategory `json:"category,omitempty"`
}

// ParseReceipt reads the first JSON object in a model reply.
// Markdown fences are ignored and each field is checked on its own, so one bad
// field does not lose the rest.
func ParseReceipt(reply string) (ReceiptGuess, error) {
	body, err := firstObject(stripFences(reply))
	if err != nil {
		return ReceiptGuess{}, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return ReceiptGuess{}, fmt.Errorf("invalid receipt JSON: %w", err)
	}

	var guess ReceiptGuess

	if v, ok := raw["amount"]; ok {
		var n *types.FlexNumber
		if json.Unmarshal(v, &n) == nil && n != nil {
			amount := n.Float64()
			guess.Amount = &amount
		}
	}

	if s, ok := rawString(raw, "date"); ok {
		if _, err := time.Parse("2006-01-02", s); err == nil {
			guess.Date = &s
		}
	}

	if s, ok := rawString(raw, "description"); ok {
		guess.Description = &s
	}

	if s, ok := rawString(raw, "category"); ok {
		c := MatchCategory(s)
		guess.Category = &c
	}

	return guess, nil
}

// MatchCategory maps free text onto an expense category ignoring case and accents.
// Unknown text maps to Otros.
func MatchCategory(value string) models.ExpenseCategory {
	key := foldKey(value)
	for _, c := range models.ExpenseCategories {
		if foldKey(string(c)) == key {
			return c
		}
	}
	return models.ExpenseCategoryOther
}

func rawString(raw map[string]json.RawMessage, key string) (string, bool) {
	v, ok := raw[key]
	if !ok {
		return "", false
	}
	var s string
	if json.Unmarshal(v, &s) != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func stripFences(reply string) string {
	reply = strings.ReplaceAll(reply, "```json", "")
	reply = strings.ReplaceAll(reply, "```", "")
	return strings.TrimSpace(reply)
}

// firstObject returns the first balanced {...} span, honoring JSON strings
func firstObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSON
}

func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// DecodeImagePayload accepts an image as a data URL or as bare base64
func DecodeImagePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, errors.New("empty image payload")
	}

	_, data, err := media.DecodeDataURL(payload)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, media.ErrNotDataURL) {
		return nil, err
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	return data, nil
}
