package listing

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/umputun/realtor/pkg/domain"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders price with grouped thousands, i.e. "45,000 $". Cents are rounded off.
func FormatPrice(price float64) string {
	return pricePrinter.Sprintf("%d $", int64(math.Round(price)))
}

// OperationLabel returns the badge text for the deal type
func OperationLabel(op domain.Operation) string {
	if op == domain.OperationSale {
		return "Продажа"
	}
	return "Аренда"
}

// FormatArea renders area with at most one decimal, 85 -> "85", 54.5 -> "54.5"
func FormatArea(area float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", area), ".0")
}
