package sheetsdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "Campos simples - deve separar e aparar espaços",
			line:     " a , b,c ,  d",
			expected: []string{"a", "b", "c", "d"},
		},
		{
			name:     "Vírgula entre aspas - deve manter no mesmo campo",
			line:     `Conta,"Campaign, Phase 1",Ad`,
			expected: []string{"Conta", "Campaign, Phase 1", "Ad"},
		},
		{
			name:     "Número com vírgula decimal entre aspas",
			line:     `x,"1234,56",y`,
			expected: []string{"x", "1234,56", "y"},
		},
		{
			name:     "Campos vazios são preservados",
			line:     "a,,b,",
			expected: []string{"a", "", "b", ""},
		},
		{
			name:     "Linha vazia - um único campo vazio",
			line:     "",
			expected: []string{""},
		},
		{
			name:     "Aspas desbalanceadas - vírgulas seguintes deixam de separar",
			line:     `a,"b,c,d`,
			expected: []string{"a", "b,c,d"},
		},
		{
			name:     "Aspas no meio do campo são removidas",
			line:     `ab"c"d,e`,
			expected: []string{"abcd", "e"},
		},
		{
			name:     "CRLF - retorno de carro é aparado",
			line:     "a,b\r",
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitLine(tt.line))
		})
	}
}

func TestSplitLine_UnquotedFieldCount(t *testing.T) {
	for n := 1; n <= 15; n++ {
		line := ""
		for i := 0; i < n; i++ {
			if i > 0 {
				line += ","
			}
			line += "  v  "
		}

		fields := SplitLine(line)
		assert.Len(t, fields, n)
		for _, field := range fields {
			assert.Equal(t, "v", field)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected float64
	}{
		{name: "Vírgula decimal", value: "1234,56", expected: 1234.56},
		{name: "Vazio", value: "", expected: 0},
		{name: "Texto", value: "abc", expected: 0},
		{name: "Ponto decimal", value: "10.5", expected: 10.5},
		{name: "Inteiro", value: "42", expected: 42},
		{name: "Negativo", value: "-3,5", expected: -3.5},
		{name: "Prefixo numérico com sufixo", value: "10.5abc", expected: 10.5},
		{name: "Somente a primeira vírgula é trocada", value: "1,234,56", expected: 1.234},
		{name: "Separador de milhar com ponto", value: "1.234,56", expected: 1.234},
		{name: "Notação científica", value: "1e3", expected: 1000},
		{name: "Começa com ponto", value: ".5", expected: 0.5},
		{name: "Sinal sozinho", value: "-", expected: 0},
		{name: "Moeda antes do número", value: "R$ 10", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseNumber(tt.value), 1e-9)
		})
	}
}
