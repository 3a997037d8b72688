package service

import (
	"context"
	"testing"
	"time"

	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/pkg/events"
	"github.com/granjatech/granja-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleFixture() (*SaleService, *fakeSaleRepo, *fakeStockRepo) {
	saleRepo := newFakeSaleRepo()
	stockRepo := newFakeStockRepo()
	svc := NewSaleService(saleRepo, stockRepo, events.NewBus())
	return svc, saleRepo, stockRepo
}

func TestCreateSaleCashIsPaidImmediately(t *testing.T) {
	svc, saleRepo, _ := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		Date:          time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		Customer:      "Mercado Central",
		Product:       "Eggs",
		QuantitySold:  120,
		UnitPrice:     0.50,
		PaymentMethod: "Dinheiro",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, sale.PaymentStatus)
	require.NotNil(t, sale.PaymentDate)
	assert.InDelta(t, 60.0, sale.TotalValue, 1e-9)
	assert.Equal(t, 120, saleRepo.debitedTotals)
}

func TestCreateSaleOnCreditStartsPending(t *testing.T) {
	svc, _, _ := newSaleFixture()

	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		Date:          time.Now(),
		Customer:      "Padaria do Bairro",
		Product:       "Eggs",
		QuantitySold:  30,
		UnitPrice:     0.55,
		PaymentMethod: enum.PaymentMethodOnCredit,
		DueDate:       &due,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPending, sale.PaymentStatus)
	assert.Nil(t, sale.PaymentDate)
	require.NotNil(t, sale.DueDate)
	assert.True(t, due.Equal(*sale.DueDate))
}

func TestCreateSaleOnCreditRequiresDueDate(t *testing.T) {
	svc, saleRepo, _ := newSaleFixture()

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		Date:          time.Now(),
		Customer:      "Padaria do Bairro",
		QuantitySold:  30,
		UnitPrice:     0.55,
		PaymentMethod: enum.PaymentMethodOnCredit,
	})
	assert.Error(t, err)
	assert.Empty(t, saleRepo.sales)
}

func TestCreateSaleInsufficientStockRejected(t *testing.T) {
	svc, saleRepo, stockRepo := newSaleFixture()
	saleRepo.rejectNext = true
	stockRepo.eggStock.Quantity = 10

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		Date:          time.Now(),
		Customer:      "Mercado Central",
		QuantitySold:  500,
		UnitPrice:     0.50,
		PaymentMethod: "Pix",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient egg stock")
	assert.Empty(t, saleRepo.sales)
	assert.Zero(t, saleRepo.debitedTotals)
}

func TestCreateSaleValidation(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	_, err := svc.CreateSale(ctx, &CreateSaleInput{Customer: "X", PaymentMethod: "Pix", QuantitySold: 0, UnitPrice: 1})
	assert.Error(t, err)

	_, err = svc.CreateSale(ctx, &CreateSaleInput{Customer: "X", PaymentMethod: "Pix", QuantitySold: 5, UnitPrice: -1})
	assert.Error(t, err)

	_, err = svc.CreateSale(ctx, &CreateSaleInput{PaymentMethod: "Pix", QuantitySold: 5, UnitPrice: 1})
	assert.Error(t, err)
}

func TestSettleSaleStampsPaymentDate(t *testing.T) {
	svc, _, _ := newSaleFixture()

	due := time.Now().AddDate(0, 0, 7)
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		Date:          time.Now(),
		Customer:      "Padaria do Bairro",
		QuantitySold:  30,
		UnitPrice:     0.55,
		PaymentMethod: enum.PaymentMethodOnCredit,
		DueDate:       &due,
	})
	require.NoError(t, err)

	settled, err := svc.SettleSale(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPaid, settled.PaymentStatus)
	require.NotNil(t, settled.PaymentDate)
}

func TestSettleSaleAlreadyPaidRejected(t *testing.T) {
	svc, _, _ := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		Date:          time.Now(),
		Customer:      "Mercado Central",
		QuantitySold:  12,
		UnitPrice:     0.50,
		PaymentMethod: "Dinheiro",
	})
	require.NoError(t, err)

	_, err = svc.SettleSale(context.Background(), sale.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already paid")
}

func TestListReceivablesFiltersPending(t *testing.T) {
	svc, _, _ := newSaleFixture()
	ctx := context.Background()

	due := time.Now().AddDate(0, 0, 7)
	_, err := svc.CreateSale(ctx, &CreateSaleInput{
		Date: time.Now(), Customer: "A", QuantitySold: 10, UnitPrice: 0.5,
		PaymentMethod: enum.PaymentMethodOnCredit, DueDate: &due,
	})
	require.NoError(t, err)
	_, err = svc.CreateSale(ctx, &CreateSaleInput{
		Date: time.Now(), Customer: "B", QuantitySold: 10, UnitPrice: 0.5,
		PaymentMethod: "Pix",
	})
	require.NoError(t, err)

	result, err := svc.ListReceivables(ctx, pagination.DefaultPagination(), false)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "A", result.Items[0].Customer)
}
