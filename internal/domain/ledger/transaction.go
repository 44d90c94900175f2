package ledger

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type Source string

const (
	SourceManual      Source = "manual"
	SourceAppointment Source = "appointment"
	SourceOrder       Source = "order"
)

type Status string

const (
	StatusPosted Status = "posted"
	StatusVoided Status = "voided"
)

// Categorias padrão atribuídas a lançamentos derivados, quando o
// tenant as possui.
const (
	CategoryServices = "Serviços"
	CategorySales    = "Vendas"
)
