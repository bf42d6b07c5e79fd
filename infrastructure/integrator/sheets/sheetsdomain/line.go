package sheetsdomain

import (
	"regexp"
	"strconv"
	"strings"
)

// SplitLine separa uma linha do CSV em campos. Aspas duplas apenas alternam o modo "entre aspas"
// (não há escape de aspas) e vírgulas dentro de aspas fazem parte do campo.
func SplitLine(line string) []string {
	fields := make([]string, 0, ColumnCount)

	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}

var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber converte um campo numérico da planilha. Vírgula decimal é aceita (somente a primeira
// vírgula vira ponto) e qualquer valor inválido vira 0.
func ParseNumber(value string) float64 {
	if value == "" {
		return 0
	}

	cleaned := strings.TrimSpace(strings.Replace(value, ",", ".", 1))

	prefix := numberPrefix.FindString(cleaned)
	if prefix == "" {
		return 0
	}

	number, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}

	return number
}
