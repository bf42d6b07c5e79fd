package domain

type CPADirection string

const (
	CPADirectionImproving CPADirection = "improving"
	CPADirectionWorsening CPADirection = "worsening"
	CPADirectionStable    CPADirection = "stable"
)

// CPAChangeThresholdPct é a faixa (em %) dentro da qual a variação de CPA é considerada estável
const CPAChangeThresholdPct = 5.0

// CampaignTrend resume custo, conversões e CPA de uma campanha nas janelas de 7, 14 e 30 dias
type CampaignTrend struct {
	CampaignName   string       `json:"campaign_name"`
	Cost7d         float64      `json:"cost_7d"`
	Cost14d        float64      `json:"cost_14d"`
	Cost30d        float64      `json:"cost_30d"`
	Conversions7d  float64      `json:"conversions_7d"`
	Conversions14d float64      `json:"conversions_14d"`
	Conversions30d float64      `json:"conversions_30d"`
	CPA7d          float64      `json:"cpa_7d"`
	CPA14d         float64      `json:"cpa_14d"`
	CPA30d         float64      `json:"cpa_30d"`
	CPAChangePct   float64      `json:"cpa_change_pct"`
	CPADirection   CPADirection `json:"cpa_direction"`
}

// CompareCPA compara o CPA recente com o de referência. CPA menor é melhor.
func CompareCPA(current, previous float64) (float64, CPADirection) {
	if current == 0 && previous == 0 {
		return 0, CPADirectionStable
	}

	change := 0.0
	if previous > 0 {
		change = ((current - previous) / previous) * 100
	}

	switch {
	case change < -CPAChangeThresholdPct:
		return change, CPADirectionImproving
	case change > CPAChangeThresholdPct:
		return change, CPADirectionWorsening
	default:
		return change, CPADirectionStable
	}
}
