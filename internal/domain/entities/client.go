package entities

// Client is a customer of the company. Budgets reference it by ID only.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Document string `json:"document"`
}

// UnknownClientName is shown when a budget points at a client that no longer exists.
const UnknownClientName = "Cliente não informado"
