package domain

// AdPerformance é o desempenho acumulado de um criativo (agrupado pelo nome do anúncio)
type AdPerformance struct {
	AdName            string  `json:"ad_name"`
	CampaignName      string  `json:"campaign_name"`
	ThumbnailURL      string  `json:"thumbnail_url"`
	Spend             float64 `json:"spend"`
	Conversions       float64 `json:"conversions"`
	CostPerConversion float64 `json:"cost_per_conversion"`
	Impressions       float64 `json:"impressions"`
	Reach             float64 `json:"reach"`
	Engagement        float64 `json:"engagement"`
}
