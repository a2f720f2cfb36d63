package formatter

import (
	"fmt"
	"strconv"

	"github.com/evelynko/carnet/internal/domain"
)

// EUR formats a base-currency amount like "€12.5". One decimal place,
// matching the ledger display everywhere in the app.
func EUR(amount float64) string {
	return "€" + strconv.FormatFloat(amount, 'f', 1, 64)
}

// TWD formats the converted display value like "NT$438". Conversion
// rounds to the whole unit; the stored EUR amount is untouched.
func TWD(amount float64) string {
	return fmt.Sprintf("NT$%d", domain.Convert(amount, domain.EURToTWD))
}

// Money renders both currencies side by side: "€12.5 ≈ NT$438".
func Money(amount float64) string {
	return EUR(amount) + Dim(" ≈ ") + TWD(amount)
}
