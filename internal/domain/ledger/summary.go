package ledger

import "github.com/agendalivre/platform-api/internal/models"

type Summary struct {
	TotalIncome           float64            `json:"totalIncome"`
	TotalExpense          float64            `json:"totalExpense"`
	Balance               float64            `json:"balance"`
	IncomeByPaymentMethod map[string]float64 `json:"incomeByPaymentMethod"`
	ExpenseByCategory     map[string]float64 `json:"expenseByCategory"`
}

// Summarize agrega lançamentos posted já filtrados pelo período.
func Summarize(txs []models.FinancialTransaction) Summary {
	s := Summary{
		IncomeByPaymentMethod: map[string]float64{},
		ExpenseByCategory:     map[string]float64{},
	}

	for _, t := range txs {
		if Status(t.Status) != StatusPosted {
			continue
		}

		switch Type(t.Type) {
		case TypeIncome:
			s.TotalIncome += t.Amount
			method := t.PaymentMethod
			if method == "" {
				method = "outros"
			}
			s.IncomeByPaymentMethod[method] += t.Amount

		case TypeExpense:
			s.TotalExpense += t.Amount
			category := t.CategoryName
			if category == "" {
				category = "Sem categoria"
			}
			s.ExpenseByCategory[category] += t.Amount
		}
	}

	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}
