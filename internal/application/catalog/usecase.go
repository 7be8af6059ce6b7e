package catalog

import (
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// CatalogUseCase lista el catálogo del dealer. Solo lectura, sin paginación;
// el filtrado ocurre del lado del cliente.
type CatalogUseCase struct {
	repo     repository.CatalogRepository
	dealerID string
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository, dealerID string) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, dealerID: dealerID}
}

// List devuelve los productos con su categoría, en el orden del catálogo.
func (uc *CatalogUseCase) List() ([]dto.CatalogProductResponse, error) {
	list, err := uc.repo.ListProducts(uc.dealerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.CatalogProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Category: p.Category,
		})
	}
	return items, nil
}
