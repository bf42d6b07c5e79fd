package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrencyBRL formata um valor em reais no padrão pt-BR (ex: R$ 1.234,56)
func FormatCurrencyBRL(value float64) string {
	amount := decimal.NewFromFloat(value).Round(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	rounded, _ := amount.Float64()
	p := message.NewPrinter(language.BrazilianPortuguese)

	return sign + "R$ " + p.Sprintf("%v", number.Decimal(rounded, number.Scale(2)))
}

// FormatNumberBR arredonda para inteiro e agrupa os milhares com ponto (ex: 12.346)
func FormatNumberBR(value float64) string {
	rounded, _ := decimal.NewFromFloat(value).Round(0).Float64()
	p := message.NewPrinter(language.BrazilianPortuguese)

	return p.Sprintf("%v", number.Decimal(rounded, number.Scale(0)))
}
