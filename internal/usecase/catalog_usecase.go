package usecase

import (
	"context"
	"errors"
	"mixto_gestao/internal/domain/entities"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrMaterialNotFound    = errors.New("material not found")
	ErrInvalidCatalogID    = errors.New("invalid catalog id")
	ErrInvalidCatalogName  = errors.New("catalog entry name is required")
	ErrInvalidCatalogPrice = errors.New("catalog price and stock must not be negative")
)

type ServiceCommand struct {
	Name        string
	Description string
	BasePrice   float64
	Unit        string
}

type MaterialCommand struct {
	Name      string
	UnitPrice float64
	Stock     float64
	Unit      string
}

// ICatalogUseCase manages the service and material catalogs.
//
// Price changes never touch budgets: line items keep the price captured
// when they were selected.
type ICatalogUseCase interface {
	ListServices(ctx context.Context) []entities.Service
	GetService(ctx context.Context, id string) (entities.Service, error)
	CreateService(ctx context.Context, cmd ServiceCommand) (entities.Service, error)
	UpdateService(ctx context.Context, id string, cmd ServiceCommand) (entities.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListMaterials(ctx context.Context) []entities.Material
	GetMaterial(ctx context.Context, id string) (entities.Material, error)
	CreateMaterial(ctx context.Context, cmd MaterialCommand) (entities.Material, error)
	UpdateMaterial(ctx context.Context, id string, cmd MaterialCommand) (entities.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	ws *Workspace
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(ws *Workspace) *CatalogUseCase {
	return &CatalogUseCase{ws: ws}
}

func (u *CatalogUseCase) ListServices(_ context.Context) []entities.Service {
	return u.ws.Snapshot().Services
}

func (u *CatalogUseCase) GetService(_ context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidCatalogID
	}
	s, ok := u.ws.Snapshot().FindService(id)
	if !ok {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) CreateService(ctx context.Context, cmd ServiceCommand) (entities.Service, error) {
	if err := cmd.validate(); err != nil {
		return entities.Service{}, err
	}
	s := cmd.apply(entities.Service{ID: uuid.NewString()})
	err := u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		d.Services = append(d.Services, s)
		return []entities.Collection{entities.CollectionServices}, nil
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, cmd ServiceCommand) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidCatalogID
	}
	if err := cmd.validate(); err != nil {
		return entities.Service{}, err
	}

	var updated entities.Service
	err := u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		for i := range d.Services {
			if d.Services[i].ID == id {
				d.Services[i] = cmd.apply(d.Services[i])
				updated = d.Services[i]
				return []entities.Collection{entities.CollectionServices}, nil
			}
		}
		return nil, ErrServiceNotFound
	})
	if err != nil {
		return entities.Service{}, err
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	return u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		for i := range d.Services {
			if d.Services[i].ID == id {
				d.Services = append(d.Services[:i], d.Services[i+1:]...)
				return []entities.Collection{entities.CollectionServices}, nil
			}
		}
		return nil, ErrServiceNotFound
	})
}

func (u *CatalogUseCase) ListMaterials(_ context.Context) []entities.Material {
	return u.ws.Snapshot().Materials
}

func (u *CatalogUseCase) GetMaterial(_ context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidCatalogID
	}
	m, ok := u.ws.Snapshot().FindMaterial(id)
	if !ok {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *CatalogUseCase) CreateMaterial(ctx context.Context, cmd MaterialCommand) (entities.Material, error) {
	if err := cmd.validate(); err != nil {
		return entities.Material{}, err
	}
	m := cmd.apply(entities.Material{ID: uuid.NewString()})
	err := u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		d.Materials = append(d.Materials, m)
		return []entities.Collection{entities.CollectionMaterials}, nil
	})
	if err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (u *CatalogUseCase) UpdateMaterial(ctx context.Context, id string, cmd MaterialCommand) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidCatalogID
	}
	if err := cmd.validate(); err != nil {
		return entities.Material{}, err
	}

	var updated entities.Material
	err := u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		for i := range d.Materials {
			if d.Materials[i].ID == id {
				d.Materials[i] = cmd.apply(d.Materials[i])
				updated = d.Materials[i]
				return []entities.Collection{entities.CollectionMaterials}, nil
			}
		}
		return nil, ErrMaterialNotFound
	})
	if err != nil {
		return entities.Material{}, err
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteMaterial(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	return u.ws.Update(ctx, func(d *entities.Dataset) ([]entities.Collection, error) {
		for i := range d.Materials {
			if d.Materials[i].ID == id {
				d.Materials = append(d.Materials[:i], d.Materials[i+1:]...)
				return []entities.Collection{entities.CollectionMaterials}, nil
			}
		}
		return nil, ErrMaterialNotFound
	})
}

func (c *ServiceCommand) validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	c.Unit = strings.TrimSpace(c.Unit)
	if c.Name == "" {
		return ErrInvalidCatalogName
	}
	if c.BasePrice < 0 {
		return ErrInvalidCatalogPrice
	}
	if c.Unit == "" {
		c.Unit = entities.DefaultUnit
	}
	return nil
}

func (c ServiceCommand) apply(dst entities.Service) entities.Service {
	dst.Name = c.Name
	dst.Description = c.Description
	dst.BasePrice = c.BasePrice
	dst.Unit = c.Unit
	return dst
}

func (c *MaterialCommand) validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Unit = strings.TrimSpace(c.Unit)
	if c.Name == "" {
		return ErrInvalidCatalogName
	}
	if c.UnitPrice < 0 || c.Stock < 0 {
		return ErrInvalidCatalogPrice
	}
	if c.Unit == "" {
		c.Unit = entities.DefaultUnit
	}
	return nil
}

func (c MaterialCommand) apply(dst entities.Material) entities.Material {
	dst.Name = c.Name
	dst.UnitPrice = c.UnitPrice
	dst.Stock = c.Stock
	dst.Unit = c.Unit
	return dst
}
