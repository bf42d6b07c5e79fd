package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareCPA(t *testing.T) {
	tests := []struct {
		name              string
		current           float64
		previous          float64
		expectedChange    float64
		expectedDirection CPADirection
	}{
		{"CPA subiu acima da faixa", 106, 100, 6, CPADirectionWorsening},
		{"CPA caiu abaixo da faixa", 80, 100, -20, CPADirectionImproving},
		{"Limite superior é estável", 105, 100, 5, CPADirectionStable},
		{"Limite inferior é estável", 95, 100, -5, CPADirectionStable},
		{"Sem CPA de referência", 60, 0, 0, CPADirectionStable},
		{"Sem CPA recente", 0, 50, -100, CPADirectionImproving},
		{"Ambos zerados", 0, 0, 0, CPADirectionStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, direction := CompareCPA(tt.current, tt.previous)
			assert.InDelta(t, tt.expectedChange, change, 1e-9)
			assert.Equal(t, tt.expectedDirection, direction)
		})
	}
}
