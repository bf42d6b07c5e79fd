package domain

// AggregateTotals são as somas das métricas de um conjunto de linhas
type AggregateTotals struct {
	TotalSpend       float64 `json:"total_spend"`
	TotalConversions float64 `json:"total_conversions"`
	TotalReach       float64 `json:"total_reach"`
	TotalImpressions float64 `json:"total_impressions"`
	TotalEngagement  float64 `json:"total_engagement"`
}

// Add soma campo a campo, sem alterar os operandos
func (t AggregateTotals) Add(other AggregateTotals) AggregateTotals {
	return AggregateTotals{
		TotalSpend:       t.TotalSpend + other.TotalSpend,
		TotalConversions: t.TotalConversions + other.TotalConversions,
		TotalReach:       t.TotalReach + other.TotalReach,
		TotalImpressions: t.TotalImpressions + other.TotalImpressions,
		TotalEngagement:  t.TotalEngagement + other.TotalEngagement,
	}
}

// CostPerConversion retorna spend/conversions ou 0 quando não há conversões
func (t AggregateTotals) CostPerConversion() float64 {
	return CostPerConversion(t.TotalSpend, t.TotalConversions)
}

// DashboardMetrics são os números dos cards do painel
type DashboardMetrics struct {
	AggregateTotals
	AvgCPA float64 `json:"avg_cpa"`
	CTR    float64 `json:"ctr"` // engajamento / impressões em %
}

// CalculateDashboardMetrics deriva CPA médio e CTR a partir dos totais
func CalculateDashboardMetrics(totals AggregateTotals) DashboardMetrics {
	ctr := 0.0
	if totals.TotalImpressions > 0 {
		ctr = (totals.TotalEngagement / totals.TotalImpressions) * 100
	}

	return DashboardMetrics{
		AggregateTotals: totals,
		AvgCPA:          totals.CostPerConversion(),
		CTR:             ctr,
	}
}

func CostPerConversion(spend, conversions float64) float64 {
	if conversions > 0 {
		return spend / conversions
	}
	return 0
}
