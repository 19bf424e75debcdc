package inventory_test

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fullerpub/barstock-api/internal/application/dto"
	"github.com/fullerpub/barstock-api/internal/application/inventory"
	"github.com/fullerpub/barstock-api/internal/domain"
	"github.com/fullerpub/barstock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de producto y categoría
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	rows map[string]*entity.Product

	updateStockErr error
	listErr        error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{rows: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entity.Product, 0, len(f.rows))
	for _, p := range f.rows {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStock(productID string, bar int, qty decimal.Decimal) error {
	if f.updateStockErr != nil {
		return f.updateStockErr
	}
	p, ok := f.rows[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.SetStockAt(bar, qty)
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.rows, id)
	return nil
}

type fakeCategoryRepo struct {
	rows    []*entity.Category
	listErr error
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range f.rows {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entity.Category, len(f.rows))
	for i, c := range f.rows {
		cp := *c
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	for i, c := range f.rows {
		if c.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func qty(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedProduct(repo *fakeProductRepo, id, categoryID, name string, bar1, bar2 string) {
	now := time.Now()
	_ = repo.Create(&entity.Product{
		ID: id, CategoryID: categoryID, Name: name, VolumeML: 700,
		StockBar1: qty(bar1), StockBar2: qty(bar2),
		CreatedAt: now, UpdatedAt: now,
	})
}

var (
	adminSession = entity.Session{UserID: "u-admin", Role: entity.RoleAdmin, BarNumber: 1}
	staffBar1    = entity.Session{UserID: "u-b1", Role: entity.RoleStaff, BarNumber: 1}
	staffBar2    = entity.Session{UserID: "u-b2", Role: entity.RoleStaff, BarNumber: 2}
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de edición de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_AdminEditaCualquierBar(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p-1", "", "Vodka", "10.0", "4.0")
	uc := inventory.NewUseCase(products, &fakeCategoryRepo{})

	out, err := uc.UpdateStock(adminSession, "p-1", dto.UpdateStockRequest{Bar: 2, Quantity: qty("7.5")})
	require.NoError(t, err)
	assert.True(t, qty("7.5").Equal(out.Product.StockBar2))
	assert.True(t, qty("10.0").Equal(out.Product.StockBar1), "el otro bar no se toca")
}

func TestUpdateStock_StaffEditaSuBar(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p-1", "", "Vodka", "10.0", "4.0")
	uc := inventory.NewUseCase(products, &fakeCategoryRepo{})

	out, err := uc.UpdateStock(staffBar1, "p-1", dto.UpdateStockRequest{Bar: 1, Quantity: qty("9.5")})
	require.NoError(t, err)
	assert.True(t, qty("9.5").Equal(out.Product.StockBar1))
}

// Staff de bar 2 intenta editar el bar 1: denegado, y la respuesta trae la
// fila del almacén sin cambios para que el cliente re-sincronice.
func TestUpdateStock_DenegadoDevuelveFilaAutoritativa(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p-1", "", "Vodka", "10.0", "4.0")
	uc := inventory.NewUseCase(products, &fakeCategoryRepo{})

	out, err := uc.UpdateStock(staffBar2, "p-1", dto.UpdateStockRequest{Bar: 1, Quantity: qty("99.0")})
	assert.ErrorIs(t, err, domain.ErrEditRejected)
	require.NotNil(t, out, "la denegación incluye la fila para re-render")
	assert.True(t, qty("10.0").Equal(out.Product.StockBar1), "nunca el valor tecleado rechazado")

	stored, _ := products.GetByID("p-1")
	assert.True(t, qty("10.0").Equal(stored.StockBar1), "el almacén queda intacto")
}

// Escritura fallida tras autorizar: la respuesta trae el valor pre-edición.
func TestUpdateStock_PersistenciaFallida_Reconcilia(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p-1", "", "Vodka", "10.0", "4.0")
	products.updateStockErr = errors.New("timeout de red")
	uc := inventory.NewUseCase(products, &fakeCategoryRepo{})

	out, err := uc.UpdateStock(staffBar1, "p-1", dto.UpdateStockRequest{Bar: 1, Quantity: qty("2.0")})
	assert.ErrorIs(t, err, domain.ErrEditPersist)
	require.NotNil(t, out)
	assert.True(t, qty("10.0").Equal(out.Product.StockBar1),
		"tras el fallo se muestra el último valor confirmado, no la edición local")
}

func TestUpdateStock_EntradaInvalida(t *testing.T) {
	products := newFakeProductRepo()
	seedProduct(products, "p-1", "", "Vodka", "10.0", "4.0")
	uc := inventory.NewUseCase(products, &fakeCategoryRepo{})

	_, err := uc.UpdateStock(adminSession, "p-1", dto.UpdateStockRequest{Bar: 3, Quantity: qty("1.0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStock(adminSession, "p-1", dto.UpdateStockRequest{Bar: 1, Quantity: qty("-1.0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStock_ProductoInexistente(t *testing.T) {
	uc := inventory.NewUseCase(newFakeProductRepo(), &fakeCategoryRepo{})
	_, err := uc.UpdateStock(adminSession, "no-existe", dto.UpdateStockRequest{Bar: 1, Quantity: qty("1.0")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la carta agrupada
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_AgrupaPorCategoriaYHuerfanos(t *testing.T) {
	products := newFakeProductRepo()
	categories := &fakeCategoryRepo{}
	now := time.Now()
	_ = categories.Create(&entity.Category{ID: "c-2", Name: "Whisky", OrderIndex: 2, CreatedAt: now, UpdatedAt: now})
	_ = categories.Create(&entity.Category{ID: "c-1", Name: "Vodka", OrderIndex: 1, CreatedAt: now, UpdatedAt: now})
	seedProduct(products, "p-1", "c-1", "Beluga", "3.0", "1.0")
	seedProduct(products, "p-2", "c-2", "Macallan", "2.0", "0.0")
	seedProduct(products, "p-3", "c-borrada", "Campari", "1.0", "1.0") // categoría inexistente

	uc := inventory.NewUseCase(products, categories)
	out, err := uc.Catalog()
	require.NoError(t, err)

	require.Len(t, out.Groups, 3)
	assert.Equal(t, "Vodka", out.Groups[0].Category.Name, "respeta order_index")
	assert.Equal(t, "Whisky", out.Groups[1].Category.Name)
	assert.Nil(t, out.Groups[2].Category, "los huérfanos van al grupo sin categoría")
	require.Len(t, out.Groups[2].Products, 1)
	assert.Equal(t, "Campari", out.Groups[2].Products[0].Name)
}

func TestCatalog_FalloDeCarga(t *testing.T) {
	categories := &fakeCategoryRepo{listErr: errors.New("relación inexistente")}
	uc := inventory.NewUseCase(newFakeProductRepo(), categories)
	_, err := uc.Catalog()
	assert.Error(t, err)
}
