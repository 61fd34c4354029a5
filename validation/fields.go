// Package validation normalizes and checks raw entity fields. Every function
// is pure; nothing here touches persistence.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joaomarcosmb/cd-rental/util/apperr"
)

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	barcodePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)
	nonDigits      = regexp.MustCompile(`[^0-9]`)
)

func fail(field, msg string) apperr.FieldError {
	return apperr.FieldError{Field: field, Message: msg}
}

// Required rejects empty or whitespace-only values.
func Required(field, label, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fail(field, label+" is required")
	}
	return nil
}

func MinLength(field, label, raw string, n int) error {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) < n {
		return fail(field, fmt.Sprintf("%s must be at least %d characters", label, n))
	}
	return nil
}

func ExactLength(field, label, v string, n int) error {
	if utf8.RuneCountInString(v) != n {
		return fail(field, fmt.Sprintf("%s must be exactly %d characters", label, n))
	}
	return nil
}

// Digits strips every non-digit character.
func Digits(raw string) string { return nonDigits.ReplaceAllString(raw, "") }

func uniform(s string) bool {
	return s != "" && strings.Count(s, s[:1]) == len(s)
}

// TitleCase trims and title-cases free text.
func TitleCase(raw string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(raw))
}

// text is the shared rule for names and free text: required, min length, title-cased.
func text(field, label, raw string, min int) (string, error) {
	if err := Required(field, label, raw); err != nil {
		return "", err
	}
	if err := MinLength(field, label, raw, min); err != nil {
		return "", err
	}
	return TitleCase(raw), nil
}

// taxID is the shared rule for CPF and CNPJ.
func taxID(field, label, raw string, n int) (string, error) {
	if err := Required(field, label, raw); err != nil {
		return "", err
	}
	clean := Digits(raw)
	if err := ExactLength(field, label, clean, n); err != nil {
		return "", err
	}
	if uniform(clean) {
		return "", fail(field, label+" cannot have all the same digits")
	}
	return clean, nil
}

func CPF(raw string) (string, error) { return taxID("cpf", "CPF", raw, 11) }

func CNPJ(raw string) (string, error) { return taxID("cnpj", "CNPJ", raw, 14) }

func Name(raw string) (string, error) { return text("name", "Name", raw, 2) }

func TradeName(raw string) (string, error) { return text("trade_name", "Trade name", raw, 2) }

func Phone(raw string) (string, error) {
	if err := Required("phone", "Phone", raw); err != nil {
		return "", err
	}
	clean := Digits(raw)
	if len(clean) != 11 {
		return "", fail("phone", "Phone must be in the format 85999999999")
	}
	return clean, nil
}

func Email(raw string) (string, error) {
	if err := Required("email", "Email", raw); err != nil {
		return "", err
	}
	v := strings.TrimSpace(raw)
	if !emailPattern.MatchString(v) {
		return "", fail("email", "Email must be a valid email address")
	}
	return strings.ToLower(v), nil
}

func Street(raw string) (string, error) { return text("street", "Street", raw, 2) }

func Neighborhood(raw string) (string, error) { return text("neighborhood", "Neighborhood", raw, 2) }

func City(raw string) (string, error) { return text("city", "City", raw, 2) }

func Number(raw string) (string, error) {
	if err := Required("number", "Number", raw); err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func State(raw string) (string, error) {
	if err := Required("state", "State", raw); err != nil {
		return "", err
	}
	v := strings.TrimSpace(raw)
	if err := ExactLength("state", "State", v, 2); err != nil {
		return "", err
	}
	for _, r := range v {
		if !unicode.IsLetter(r) {
			return "", fail("state", "State must contain only letters")
		}
	}
	return strings.ToUpper(v), nil
}

func ZipCode(raw string) (string, error) {
	if err := Required("zip_code", "ZIP code", raw); err != nil {
		return "", err
	}
	clean := Digits(raw)
	if err := ExactLength("zip_code", "ZIP code", clean, 8); err != nil {
		return "", err
	}
	return clean, nil
}

func Title(raw string) (string, error) { return text("title", "Album title", raw, 2) }

func Artist(raw string) (string, error) { return text("artist", "Artist", raw, 2) }

func Genre(raw string) (string, error) { return text("genre", "Genre", raw, 2) }

// Money parses a positive decimal rounded to cents.
func Money(field, label, raw string) (decimal.Decimal, error) {
	if err := Required(field, label, raw); err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fail(field, label+" must be a valid number")
	}
	d = d.Round(2)
	if !d.IsPositive() {
		return decimal.Zero, fail(field, label+" must be positive")
	}
	return d, nil
}

func RentalPrice(raw string) (decimal.Decimal, error) {
	return Money("rental_price", "Rental price", raw)
}

func Amount(raw string) (decimal.Decimal, error) { return Money("amount", "Amount", raw) }

func Barcode(raw string) (string, error) {
	if err := Required("barcode", "Barcode", raw); err != nil {
		return "", err
	}
	if err := MinLength("barcode", "Barcode", raw, 2); err != nil {
		return "", err
	}
	v := strings.ToUpper(strings.TrimSpace(raw))
	if !barcodePattern.MatchString(v) {
		return "", fail("barcode", "Barcode must contain only alphanumeric characters and hyphens")
	}
	return v, nil
}

// Enum lower-cases raw and checks it against the closed set.
func Enum[T ~string](field, label, raw string, allowed []T) (T, error) {
	if err := Required(field, label, raw); err != nil {
		return "", err
	}
	v := T(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range allowed {
		if a == v {
			return v, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", fail(field, fmt.Sprintf("%s must be one of: %s", label, strings.Join(names, ", ")))
}

// Ref parses a required UUID reference such as store_id.
func Ref(field, label, raw string) (uuid.UUID, error) {
	if err := Required(field, label, raw); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fail(field, label+" must be a valid UUID")
	}
	return id, nil
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp parses an ISO-8601 value. A trailing Z is UTC and so is a value
// without an offset.
func Timestamp(field, label, raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fail(field, fmt.Sprintf("Invalid %s format. Use ISO format (YYYY-MM-DDTHH:MM:SS)", strings.ToLower(label)))
}
