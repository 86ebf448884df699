package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	// SKUPattern артикул: буквы, цифры, дефис, подчеркивание, 1-64 символа
	SKUPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)
	// LocationPattern код складской локации, например "WH1-A-03" или "DOCK/2"
	LocationPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_/-]{0,31}$`)
)

const (
	// MaxQuantity верхняя граница количества в одном перемещении
	MaxQuantity = 1_000_000
	// MaxCommentLen максимальная длина комментария/заметки
	MaxCommentLen = 500
)

// Sanitize убирает управляющие символы и схлопывает пробельные последовательности
func Sanitize(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}

// ValidateSKU проверяет артикул материала
func ValidateSKU(sku string) error {
	if sku == "" {
		return fmt.Errorf("sku cannot be empty")
	}
	if !SKUPattern.MatchString(sku) {
		return fmt.Errorf("sku %q has invalid format", sku)
	}
	return nil
}

// ValidateLocation проверяет код локации
func ValidateLocation(location string) error {
	if location == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if !LocationPattern.MatchString(location) {
		return fmt.Errorf("location %q has invalid format", location)
	}
	return nil
}

// ValidateQuantity проверяет количество
func ValidateQuantity(quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if quantity > MaxQuantity {
		return fmt.Errorf("quantity must not exceed %d", MaxQuantity)
	}
	return nil
}

// ValidateComment проверяет длину комментария (после Sanitize)
func ValidateComment(comment string) error {
	if len([]rune(comment)) > MaxCommentLen {
		return fmt.Errorf("comment must not exceed %d characters", MaxCommentLen)
	}
	return nil
}

// ValidateMovement проверяет все поля перемещения
func ValidateMovement(sku, from, to string, quantity int64, note string) error {
	if err := ValidateSKU(sku); err != nil {
		return err
	}
	if err := ValidateLocation(from); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := ValidateLocation(to); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	if strings.EqualFold(from, to) {
		return fmt.Errorf("source and destination locations must differ")
	}
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	return ValidateComment(note)
}

// ValidateID проверяет, что идентификатор ресурса не пустой и без пробелов
func ValidateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s id cannot be empty", kind)
	}
	if strings.ContainsAny(id, " /\t\n") {
		return fmt.Errorf("%s id %q has invalid format", kind, id)
	}
	return nil
}
