package services

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lojf/ecaplanner/internal/models"
)

var (
	reLetters = regexp.MustCompile(`[A-Za-z]`)
	// Only allow digits, spaces, +, -, (, )
	reAllowed = regexp.MustCompile(`^[0-9+\-\s\(\)]+$`)
	// E.164-ish: + followed by 8..15 digits (no leading 0 after +)
	reE164 = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)
)

// NormPhone normalizes phone numbers to E.164. Separators are stripped,
// 00.. becomes +.., 66.. becomes +66.. and a Thai local 0.. becomes +66...
// It returns "" when the input cannot be a phone number.
func NormPhone(p string) string {
	s := strings.TrimSpace(p)

	if s == "" {
		return ""
	}
	if reLetters.MatchString(s) {
		return ""
	}
	if !reAllowed.MatchString(s) {
		return ""
	}

	// strip separators
	repl := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "\n", "", "\r", "")
	s = repl.Replace(s)

	// 00.. -> +..
	if strings.HasPrefix(s, "00") {
		s = "+" + s[2:]
	}
	// 66.. (no plus) -> +66..
	if strings.HasPrefix(s, "66") {
		s = "+" + s
	}
	// 0.. (Thai local) -> +66..
	if strings.HasPrefix(s, "0") {
		s = "+66" + s[1:]
	}
	if !strings.HasPrefix(s, "+") {
		s = "+" + s
	}
	if !reE164.MatchString(s) {
		return ""
	}
	return s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// altPhones lists the spellings a guardian row may have been stored under.
func altPhones(p string) []string {
	out := []string{}
	n := NormPhone(p)
	raw := strings.TrimSpace(p)

	if n != "" {
		out = append(out, n)
	}
	if raw != n && raw != "" {
		out = append(out, raw)
	}
	if strings.HasPrefix(n, "+66") && len(n) > 3 {
		out = append(out, "0"+n[3:])  // 0812...
		out = append(out, "66"+n[3:]) // 66812...
	}
	if strings.HasPrefix(n, "+") && len(n) > 1 {
		out = append(out, n[1:]) // drop plus
	}
	return out
}

// findGuardianByAny tries the normalized variants, then a digits-only compare.
func findGuardianByAny(tx *gorm.DB, phone string) (*models.Guardian, error) {
	var g models.Guardian

	for _, cand := range altPhones(phone) {
		err := tx.Where("phone = ?", cand).First(&g).Error
		if err == nil {
			return &g, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	// fallback: digits-only compare in SQL (ignore +, spaces, -, ())
	inDigits := digitsOnly(phone)
	if inDigits != "" {
		q := `
			REPLACE(REPLACE(REPLACE(REPLACE(REPLACE(phone,'+',''),' ',''),'-',''),'(',''),')','')
		`
		err := tx.Where(q+" = ?", inDigits).First(&g).Error
		if err == nil {
			return &g, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, gorm.ErrRecordNotFound
}
