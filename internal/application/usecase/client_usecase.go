package usecase

import (
	"context"

	"ferreteria-backend/internal/application/dto"
	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

// ClientUseCase CRUD de clientes. El listado incluye la cantidad de compras
// (ventas no anuladas) de cada cliente.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	saleRepo   repository.SaleRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, saleRepo repository.SaleRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, saleRepo: saleRepo}
}

// Create da de alta un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := &entity.Client{
		FirstName: in.Nombre,
		LastName:  in.Apellido,
		Document:  in.Documento,
		Address:   in.Direccion,
		Phone:     in.Telefono,
		Email:     in.Email,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client, nil), nil
}

// Get devuelve un cliente por ID.
func (uc *ClientUseCase) Get(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client, nil), nil
}

// List devuelve todos los clientes con su cantidad de compras.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		count, err := uc.saleRepo.CountByClient(c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toClientResponse(c, &count))
	}
	return out, nil
}

// Update modifica un cliente existente.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client := &entity.Client{
		ID:        id,
		FirstName: in.Nombre,
		LastName:  in.Apellido,
		Document:  in.Documento,
		Address:   in.Direccion,
		Phone:     in.Telefono,
		Email:     in.Email,
	}
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client, nil), nil
}

// Delete elimina un cliente. Sus ventas caen en cascada; si tiene facturas,
// el borrado se rechaza con ErrProtected.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client, purchases *int) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Nombre:    c.FirstName,
		Apellido:  c.LastName,
		Documento: c.Document,
		Direccion: c.Address,
		Telefono:  c.Phone,
		Email:     c.Email,
		Compras:   purchases,
	}
}
