package usecase

import (
	"context"
	"errors"
	"mixto_gestao/internal/domain/entities"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("client name is required")
)

// ClientCommand carries the editable fields of a client.
type ClientCommand struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Document string
}

type IClientUseCase interface {
	List(ctx context.Context) []entities.Client
	Get(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, cmd ClientCommand) (entities.Client, error)
	Update(ctx context.Context, id string, cmd ClientCommand) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	ws *Workspace
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(ws *Workspace) *ClientUseCase {
	return &ClientUseCase{ws: ws}
}

func (u *ClientUseCase) List(_ context.Context) []entities.Client {
	return u.ws.Snapshot().Clients
}

func (u *ClientUseCase) Get(_ context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, ok := u.ws.Snapshot().FindClient(id)
	if !ok {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Create(ctx context.Context, cmd ClientCommand) (entities.Client, error) {
	cmd = cmd.normalized()
	if cmd.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	c := cmd.apply(entities.Client{ID: uuid.NewString()})
	err := u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		d.Clients = append(d.Clients, c)
		return []entities.Collection{entities.CollectionClients}, nil
	})
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, cmd ClientCommand) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	cmd = cmd.normalized()
	if cmd.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	var updated entities.Client
	err := u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		for i := range d.Clients {
			if d.Clients[i].ID == id {
				d.Clients[i] = cmd.apply(d.Clients[i])
				updated = d.Clients[i]
				return []entities.Collection{entities.CollectionClients}, nil
			}
		}
		return nil, ErrClientNotFound
	})
	if err != nil {
		return entities.Client{}, err
	}
	return updated, nil
}

// Delete removes the client. Budgets that reference it keep the dangling id
// and resolve to the placeholder client.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	return u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		for i := range d.Clients {
			if d.Clients[i].ID == id {
				d.Clients = append(d.Clients[:i], d.Clients[i+1:]...)
				return []entities.Collection{entities.CollectionClients}, nil
			}
		}
		return nil, ErrClientNotFound
	})
}

func (c ClientCommand) normalized() ClientCommand {
	return ClientCommand{
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		Address:  strings.TrimSpace(c.Address),
		Document: strings.TrimSpace(c.Document),
	}
}

func (c ClientCommand) apply(dst entities.Client) entities.Client {
	dst.Name = c.Name
	dst.Email = c.Email
	dst.Phone = c.Phone
	dst.Address = c.Address
	dst.Document = c.Document
	return dst
}
