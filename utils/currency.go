package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrencyIDR memformat nilai ke format Rupiah untuk tampilan laporan.
// Contoh: 15000.50 -> "Rp 15.000,50"
func FormatCurrencyIDR(amount float64) string {
	rounded := math.Round(amount*100) / 100
	integer := int64(rounded)
	cents := int64(math.Round((rounded - float64(integer)) * 100))

	digits := fmt.Sprintf("%d", integer)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := strings.Join(groups, ".")
	if cents > 0 {
		return fmt.Sprintf("Rp %s,%02d", formatted, cents)
	}
	return fmt.Sprintf("Rp %s", formatted)
}
