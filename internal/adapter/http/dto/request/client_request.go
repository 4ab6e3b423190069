package request

import "mixto_gestao/internal/usecase"

type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Document string `json:"document"`
}

func (r ClientRequest) ToCommand() usecase.ClientCommand {
	return usecase.ClientCommand{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Document: r.Document,
	}
}
