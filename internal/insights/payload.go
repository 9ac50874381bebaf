// Package insights defines the analytics payload served by the insights
// backend and the client that loads it.
//
// The payload carries three precomputed result sets keyed by district:
//
//   - insight1: administrative update velocity (AdminPulse)
//   - insight2: updates per person, a fraud indicator (FraudScore)
//   - insight3: children enrolled vs. biometrics updated (ChildGap)
//
// A missing or null array decodes to an empty slice and renders as an empty
// chart. Unknown top-level fields are ignored.
package insights

// Payload is the body of GET /api/insights.
type Payload struct {
	Insight1 []AdminPulse `json:"insight1" validate:"dive"`
	Insight2 []FraudScore `json:"insight2" validate:"dive"`
	Insight3 []ChildGap   `json:"insight3" validate:"dive"`
}

// AdminPulse is one row of the administrative migration chart.
type AdminPulse struct {
	District   string  `json:"district" validate:"required"`
	AdminPulse float64 `json:"admin_pulse"`
}

// FraudScore is one row of the ghost update anomaly chart.
type FraudScore struct {
	District   string  `json:"district" validate:"required"`
	FraudScore float64 `json:"fraud_score"`
}

// ChildGap is one row of the child service gap chart.
type ChildGap struct {
	District    string  `json:"district" validate:"required"`
	Age5to17    float64 `json:"age_5_17" validate:"gte=0"`
	BioAge5to17 float64 `json:"bio_age_5_17" validate:"gte=0"`
}

// Rows reports the row count of each insight in order.
func (p *Payload) Rows() (insight1, insight2, insight3 int) {
	if p == nil {
		return 0, 0, 0
	}
	return len(p.Insight1), len(p.Insight2), len(p.Insight3)
}

// Districts returns every district named in the payload, first occurrence
// order, without duplicates.
func (p *Payload) Districts() []string {
	if p == nil {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	add := func(d string) {
		if d != "" && !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	for _, r := range p.Insight1 {
		add(r.District)
	}
	for _, r := range p.Insight2 {
		add(r.District)
	}
	for _, r := range p.Insight3 {
		add(r.District)
	}
	return out
}
