package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// HealthMarkdown renders the financial health report of a profile.
func HealthMarkdown(profile string, r finbook.HealthReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Health for %s", profile))

	if len(r.Months) == 0 {
		doc.PlainText("Not enough data to compute a health score.")
		return doc.String()
	}

	rows := [][]string{
		{"Average Score", fmt.Sprintf("%.2f (%s)", r.Average, finbook.HealthStatus(r.Average))},
	}
	if r.HasRecent {
		rows = append(rows, []string{
			"Recent Trend (3 mo)",
			fmt.Sprintf("%.2f (%s)", r.Recent, finbook.HealthStatus(r.Recent)),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{md.Bold("Metric"), md.Bold("Value")},
		Rows:   rows,
	})

	doc.H2("By Month")
	table := md.TableSet{
		Header: []string{"Month", "Income", "Expenses", "Score", "Status"},
		Rows:   [][]string{},
	}
	for _, m := range r.Months {
		score, status := "-", "no income"
		if m.Scored {
			score = fmt.Sprintf("%.2f", m.Score)
			status = finbook.HealthStatus(m.Score)
		}
		table.Rows = append(table.Rows, []string{
			m.Month,
			finbook.M(m.Income, currency).String(),
			finbook.M(m.Expenses, currency).String(),
			score,
			status,
		})
	}
	doc.Table(table)

	return doc.String()
}
