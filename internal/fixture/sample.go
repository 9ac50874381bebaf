package fixture

import "github.com/aadhaar-sanket/sanket/internal/insights"

// SampleSource names the built-in payload in Store.Source.
const SampleSource = "built-in sample"

// SamplePayload returns the built-in payload: the districts the dashboard
// narrative refers to plus a few neighbours for scale.
func SamplePayload() *insights.Payload {
	return &insights.Payload{
		Insight1: []insights.AdminPulse{
			{District: "Khairthal-Tijara", AdminPulse: 412.6},
			{District: "Alwar", AdminPulse: 38.4},
			{District: "Jaipur", AdminPulse: 21.7},
			{District: "Bharatpur", AdminPulse: 17.9},
			{District: "Ajmer", AdminPulse: 12.3},
		},
		Insight2: []insights.FraudScore{
			{District: "Thoubal", FraudScore: 9.84},
			{District: "Imphal West", FraudScore: 2.15},
			{District: "Bishnupur", FraudScore: 1.62},
			{District: "Kakching", FraudScore: 1.08},
			{District: "Senapati", FraudScore: 0.71},
		},
		Insight3: []insights.ChildGap{
			{District: "Bahraich", Age5to17: 186420, BioAge5to17: 2318},
			{District: "Shrawasti", Age5to17: 74215, BioAge5to17: 1904},
			{District: "Balrampur", Age5to17: 91340, BioAge5to17: 4120},
			{District: "Siddharthnagar", Age5to17: 88012, BioAge5to17: 6733},
		},
	}
}
