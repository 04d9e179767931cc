package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/application/importer"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
)

func seedSupplier(repo *fakeSupplierRepo, id, name string) {
	repo.suppliers = append(repo.suppliers, &entity.Supplier{
		ID: id, CompanyID: testCompanyID, SupplierName: name,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
}

func TestSupplierImport_CreaProveedoresYArticulos(t *testing.T) {
	tx := newFakeTxRunner()
	parser := &fakeParser{supplierWB: &importer.SupplierWorkbook{
		Suppliers: []importer.SupplierRow{
			{Line: 2, SupplierName: "Global Imports", Contact: "sales@gi.example", Country: "China"},
		},
		Items: []importer.ItemPriceRow{
			{Line: 2, SupplierName: "Global Imports", ItemName: "Tiles", Price: "42.50"},
		},
	}}
	uc := importer.NewSupplierImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Details[dto.CategorySuppliers].Created)
	assert.Equal(t, 1, result.Details[dto.CategoryItems].Created)

	require.Len(t, tx.suppliers.items, 1)
	item := tx.suppliers.items[0]
	assert.Equal(t, "Tiles", item.ItemName)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("42.5")))
	// El artículo queda atado al proveedor creado en la misma llamada.
	assert.Equal(t, tx.suppliers.suppliers[0].ID, item.SupplierID)
}

func TestSupplierImport_ProveedorDesconocidoEsErrorDeFila(t *testing.T) {
	tx := newFakeTxRunner()
	parser := &fakeParser{supplierWB: &importer.SupplierWorkbook{
		Items: []importer.ItemPriceRow{
			{Line: 2, SupplierName: "Ghost Supplies", ItemName: "Tiles", Price: "10"},
		},
	}}
	uc := importer.NewSupplierImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	require.Len(t, result.Details[dto.CategoryItems].Errors, 1)
	assert.Equal(t, "Supplier not found: Ghost Supplies", result.Details[dto.CategoryItems].Errors[0])
	assert.Empty(t, tx.suppliers.items)
}

func TestSupplierImport_ArticuloExistenteSeOmite(t *testing.T) {
	tx := newFakeTxRunner()
	seedSupplier(tx.suppliers, "s1", "Global Imports")
	tx.suppliers.items = append(tx.suppliers.items, &entity.SupplierItem{
		ID: "i1", SupplierID: "s1", ItemName: "Tiles", Price: decimal.NewFromInt(40),
	})
	parser := &fakeParser{supplierWB: &importer.SupplierWorkbook{
		Items: []importer.ItemPriceRow{
			{Line: 2, SupplierName: "global imports", ItemName: "Tiles", Price: "42.50"},
		},
	}}
	uc := importer.NewSupplierImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Details[dto.CategoryItems].Created)
	assert.Empty(t, result.Details[dto.CategoryItems].Errors)
	require.Len(t, tx.suppliers.items, 1, "el artículo existente no se duplica ni se actualiza")
	assert.True(t, tx.suppliers.items[0].Price.Equal(decimal.NewFromInt(40)))
}
