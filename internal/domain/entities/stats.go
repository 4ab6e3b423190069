package entities

// MonthlyRevenue is one point of the dashboard revenue chart.
type MonthlyRevenue struct {
	Month int     `json:"month"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardStats are the aggregate counters shown on the dashboard and fed
// to the assistant.
type DashboardStats struct {
	TotalClients   int              `json:"total_clients"`
	TotalBudgets   int              `json:"total_budgets"`
	TotalRevenue   float64          `json:"total_revenue"`
	ActiveServices int              `json:"active_services"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
}

// MonthLabels are the pt-BR short month names, January first.
var MonthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
