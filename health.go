package finbook

import "math"

// HealthScore converts a monthly savings ratio (net / income) into a
// 0-100 financial health score.
//
// Bands:
//
//	< 0%     0-25  deficit
//	0-10%   25-50
//	10-25%  50-75
//	25-40%  75-90
//	> 40%   90-100
func HealthScore(savingsRatio float64) float64 {
	var score float64
	switch {
	case savingsRatio < 0:
		score = 20 + savingsRatio*50
		score = math.Max(0, score)
	case savingsRatio < 0.1:
		score = 25 + savingsRatio*250
	case savingsRatio < 0.25:
		score = 50 + (savingsRatio-0.1)*167
	case savingsRatio < 0.4:
		score = 75 + (savingsRatio-0.25)*100
	default:
		score = 90 + (savingsRatio-0.4)*25
		score = math.Min(100, score)
	}
	return math.Round(score*100) / 100
}

// HealthStatus labels a score band.
func HealthStatus(score float64) string {
	switch {
	case score < 40:
		return "Critical"
	case score < 60:
		return "Weak"
	case score < 75:
		return "Good"
	case score < 90:
		return "Very Good"
	default:
		return "Excellent"
	}
}

// MonthHealth is one month's score in a health report. Months with no
// income carry no score (Scored is false) to avoid division by zero.
type MonthHealth struct {
	MonthlyTotal
	Ratio  float64
	Score  float64
	Scored bool
}

// HealthReport holds the per-month scores and their aggregates.
type HealthReport struct {
	Months  []MonthHealth
	Average float64 // over scored months
	// Recent is the average over the last three scored months; zero
	// value when fewer than three months are scored.
	Recent    float64
	HasRecent bool
}

// Health computes the financial health report for one profile from
// its monthly totals. Read-only.
func Health(ledger *LedgerStore, profileID string) (HealthReport, error) {
	months, err := MonthlyReport(ledger, profileID)
	if err != nil {
		return HealthReport{}, err
	}

	var report HealthReport
	var scores []float64
	for _, m := range months {
		mh := MonthHealth{MonthlyTotal: m}
		if !m.Income.IsZero() {
			ratio, _ := m.Net().Div(m.Income).Float64()
			mh.Ratio = ratio
			mh.Score = HealthScore(ratio)
			mh.Scored = true
			scores = append(scores, mh.Score)
		}
		report.Months = append(report.Months, mh)
	}

	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		report.Average = sum / float64(len(scores))
	}
	if len(scores) >= 3 {
		recent := scores[len(scores)-3:]
		report.Recent = (recent[0] + recent[1] + recent[2]) / 3
		report.HasRecent = true
	}
	return report, nil
}
