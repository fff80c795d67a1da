package handlers

import (
	"html/template"
	"strconv"
	"strings"
)

// formatYen renders a minor-unit amount as a yen string with thousands
// separators, e.g. 1234567 -> "¥1,234,567".
func formatYen(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-¥" + b.String()
	}
	return "¥" + b.String()
}

// printTemplate is the printable monthly report. It is deliberately
// self-contained: no assets, print-friendly styling only.
const printTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Monthly Financial Report - {{.MonthLabel}}</title>
<style>
  body { font-family: sans-serif; color: #111; max-width: 56rem; margin: 2rem auto; }
  h1 { text-align: center; margin-bottom: 0; }
  .month { text-align: center; color: #555; margin-top: 0.25rem; }
  .cards { display: flex; gap: 1rem; margin: 2rem 0; }
  .card { flex: 1; border: 1px solid #ccc; border-radius: 0.5rem; padding: 1rem; }
  .card h3 { margin: 0; font-size: 0.8rem; color: #555; text-transform: uppercase; }
  .card p { margin: 0.25rem 0 0; font-size: 1.2rem; font-weight: bold; }
  .income { color: #15803d; }
  .expense { color: #b91c1c; }
  .negative { color: #b91c1c; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 2rem; }
  th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #ddd; font-size: 0.9rem; }
  th { font-size: 0.75rem; color: #555; text-transform: uppercase; }
  .footer { text-align: center; color: #777; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>Monthly Financial Report</h1>
<p class="month">{{.MonthLabel}}</p>

<div class="cards">
  <div class="card"><h3>Total Income</h3><p class="income">{{yen .Summary.TotalIncome}}</p></div>
  <div class="card"><h3>Total Expenses</h3><p class="expense">{{yen .Summary.TotalExpenses}}</p></div>
  <div class="card"><h3>Net Balance</h3><p{{if lt .Summary.NetBalance 0}} class="negative"{{end}}>{{yen .Summary.NetBalance}}</p></div>
</div>

<table>
  <thead>
    <tr><th>Date</th><th>Type</th><th>Category</th><th>Amount</th><th>Notes</th></tr>
  </thead>
  <tbody>
    {{range .Rows}}
    <tr>
      <td>{{.Date}}</td>
      <td>{{.Type}}</td>
      <td>{{.Category}}</td>
      <td class="{{.Type}}">{{yen .Amount}}</td>
      <td>{{if .Notes}}{{.Notes}}{{else}}-{{end}}</td>
    </tr>
    {{end}}
  </tbody>
</table>

<p class="footer">Generated on {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
</body>
</html>
`

// Templates parses the HTML templates served by the handlers. The result
// is installed on the router with SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(
		template.New("print.html").
			Funcs(template.FuncMap{"yen": formatYen}).
			Parse(printTemplate),
	)
}
