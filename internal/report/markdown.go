package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/leekchan/accounting"

	"school-strategy-lab/internal/domain"
)

var eur = accounting.Accounting{Symbol: "€", Precision: 0, Format: "%v %s"}

// RenderSummary renders the cross-strategy risk table as Markdown.
func RenderSummary(res *domain.PortfolioResult) string {
	var sb strings.Builder

	sb.WriteString("# Strategy Valuation Summary\n\n")
	sb.WriteString(fmt.Sprintf("Baseline: %s\n\n", res.Baseline))

	sb.WriteString(fmt.Sprintf("| Strategy | EU | VaR5 | CVaR5 | P(NEV > %s) |\n", res.Baseline))
	sb.WriteString("|----------|----|------|-------|-------------|\n")
	for _, s := range res.Summaries {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			s.Strategy,
			money(s.ExpectedUtility),
			money(s.VaR5),
			money(s.CVaR5),
			prob(s.PBeatsBaseline)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// RenderStatusQuo renders the deterministic status-quo diagnostic with
// per-year revenue, cost and cashflow lines.
func RenderStatusQuo(r *domain.StatusQuoResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Deterministic Status Quo: %s\n\n", r.Strategy))
	sb.WriteString(fmt.Sprintf("Economic NPV: %s\n", money(r.NPV)))
	sb.WriteString(fmt.Sprintf("Total NEV:    %s\n\n", money(r.NEV)))

	sb.WriteString("| Year | Revenue | Total Cost | Cashflow |\n")
	sb.WriteString("|------|---------|------------|----------|\n")
	for i := range r.Revenue {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
			i+1,
			money(r.Revenue[i]),
			money(r.TotalCost[i]),
			money(r.Cashflow[i])))
	}
	sb.WriteString("\n")

	return sb.String()
}

func money(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return eur.FormatMoney(v)
}

func prob(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}
