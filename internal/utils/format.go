package utils

import (
	"fmt"
	"strings"
)

// FormatVND formats a whole-VND amount with dot thousand separators and the
// currency sign, e.g. 60000 -> "60.000₫".
func FormatVND(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	str := fmt.Sprintf("%d", amount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(".")
		}
		result.WriteRune(digit)
	}

	return sign + result.String() + "₫"
}
