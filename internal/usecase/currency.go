package usecase

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "TSh"

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount in Tanzanian shillings: "TSh 1,500.00".
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("%s %.2f", currencySymbol, amount)
}
