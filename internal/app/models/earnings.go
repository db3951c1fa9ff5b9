package models

type Earnings struct {
	Count      int             `json:"count"`
	GrossFees  float64         `json:"gross_fees"`
	TotalShare float64         `json:"total_share"`
	Breakdown  []EarningsEntry `json:"breakdown"`
}

type EarningsEntry struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}
