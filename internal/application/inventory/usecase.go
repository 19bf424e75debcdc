package inventory

import (
	"fmt"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/access"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
	"github.com/fullerpub/barstock-api/internal/domain/repository"
)

// UseCase operaciones de inventario: carga de la carta agrupada y edición de
// stock con el gatekeeper delante.
type UseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *UseCase {
	return &UseCase{products: products, categories: categories}
}

// Catalog devuelve la carta completa: categorías en su orden con sus
// productos, y al final un grupo "sin categoría" para productos cuya
// categoría no existe (no es un error).
func (uc *UseCase) Catalog() (*dto.CatalogResponse, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, fmt.Errorf("cargar categorías: %w", err)
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, fmt.Errorf("cargar productos: %w", err)
	}
	return &dto.CatalogResponse{Groups: groupProducts(categories, products)}, nil
}

// UpdateStock aplica el protocolo persistir-y-reconciliar sobre una celda:
//
//   - edición denegada   -> (fila autoritativa, ErrEditRejected)
//   - escritura fallida  -> (fila autoritativa, ErrEditPersist)
//   - escritura correcta -> (fila autoritativa, nil)
//
// En los tres casos la fila devuelta es una relectura del almacén, nunca el
// valor optimista local: el cliente re-renderiza siempre con ella.
func (uc *UseCase) UpdateStock(sess entity.Session, productID string, in dto.UpdateStockRequest) (*dto.StockEditResponse, error) {
	if !entity.ValidBar(in.Bar) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("leer producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if !access.CanEditStock(sess.Role, sess.BarNumber, in.Bar) {
		// Denegación: resultado de política. Devolvemos la fila tal y como
		// está en el almacén para que el cliente descarte lo tecleado.
		return &dto.StockEditResponse{Product: *toProductResponse(product)}, domain.ErrEditRejected
	}

	if err := uc.products.UpdateStock(productID, in.Bar, in.Quantity); err != nil {
		reread, rerr := uc.products.GetByID(productID)
		if rerr != nil || reread == nil {
			// Ni la relectura funcionó: reportar solo el fallo de persistencia.
			return nil, fmt.Errorf("%w: %v", domain.ErrEditPersist, err)
		}
		return &dto.StockEditResponse{Product: *toProductResponse(reread)}, fmt.Errorf("%w: %v", domain.ErrEditPersist, err)
	}

	reread, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("releer producto: %w", err)
	}
	if reread == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.StockEditResponse{Product: *toProductResponse(reread)}, nil
}

// groupProducts agrupa productos por categoría respetando order_index; los
// huérfanos van a un grupo final sin categoría.
func groupProducts(categories []*entity.Category, products []*entity.Product) []dto.CatalogGroup {
	groups := make([]dto.CatalogGroup, 0, len(categories)+1)
	byCategory := make(map[string][]dto.ProductResponse)
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	var orphans []dto.ProductResponse
	for _, p := range products {
		resp := *toProductResponse(p)
		if p.CategoryID != "" && known[p.CategoryID] {
			byCategory[p.CategoryID] = append(byCategory[p.CategoryID], resp)
		} else {
			orphans = append(orphans, resp)
		}
	}

	for _, c := range categories {
		cat := toCategoryResponse(c)
		groups = append(groups, dto.CatalogGroup{
			Category: cat,
			Products: byCategory[c.ID],
		})
	}
	if len(orphans) > 0 {
		groups = append(groups, dto.CatalogGroup{Category: nil, Products: orphans})
	}
	return groups
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		VolumeML:   p.VolumeML,
		StockBar1:  p.StockBar1,
		StockBar2:  p.StockBar2,
		MinStock:   p.MinStock,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		OrderIndex: c.OrderIndex,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
