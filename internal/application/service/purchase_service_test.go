package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseFixture(policy enum.CostingPolicy) (*PurchaseService, *fakeIngredientRepo, *fakePurchaseRepo) {
	ingredientRepo := newFakeIngredientRepo()
	purchaseRepo := newFakePurchaseRepo()
	svc := NewPurchaseService(purchaseRepo, ingredientRepo, policy, events.NewBus())
	return svc, ingredientRepo, purchaseRepo
}

func TestCreatePurchaseConvertsUnitsToKg(t *testing.T) {
	svc, ingredientRepo, purchaseRepo := newPurchaseFixture(enum.CostingPolicyLastPurchase)

	corn := ingredientRepo.add(&entity.Ingredient{
		Name:           "Corn",
		PurchaseUnit:   "sack",
		UnitToKgFactor: 50,
	})

	record, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		IngredientID: corn.ID,
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Quantity:     10,
		UnitPrice:    40,
	})
	require.NoError(t, err)

	assert.InDelta(t, 400.0, record.TotalValue, 1e-9)
	assert.InDelta(t, 500.0, record.TotalKg, 1e-9)
	assert.InDelta(t, 0.80, record.PricePerKg, 1e-9)

	require.NotNil(t, purchaseRepo.lastIntake)
	assert.InDelta(t, 500.0, purchaseRepo.lastIntake.CumulativeIntakeKg, 1e-9)
	assert.InDelta(t, 500.0, purchaseRepo.lastIntake.CurrentBalanceKg, 1e-9)
	assert.InDelta(t, 0.80, purchaseRepo.lastIntake.AverageCostPerKg, 1e-9)
}

func TestCreatePurchaseIntakeAccumulates(t *testing.T) {
	svc, ingredientRepo, purchaseRepo := newPurchaseFixture(enum.CostingPolicyLastPurchase)

	corn := ingredientRepo.add(&entity.Ingredient{Name: "Corn", PurchaseUnit: "sack", UnitToKgFactor: 50})

	for i := 0; i < 2; i++ {
		_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
			IngredientID: corn.ID,
			Date:         time.Now(),
			Quantity:     10,
			UnitPrice:    40,
		})
		require.NoError(t, err)
	}

	// Each intake credits the same ledger row; the second must add to the
	// first, never replace it.
	assert.InDelta(t, 1000.0, purchaseRepo.lastIntake.CumulativeIntakeKg, 1e-9)
	assert.InDelta(t, 1000.0, purchaseRepo.lastIntake.CurrentBalanceKg, 1e-9)
	assert.Len(t, purchaseRepo.records, 2)
}

func TestCreatePurchaseLastPurchaseOverwritesCost(t *testing.T) {
	svc, ingredientRepo, purchaseRepo := newPurchaseFixture(enum.CostingPolicyLastPurchase)

	soy := ingredientRepo.add(&entity.Ingredient{Name: "Soybean Meal", PurchaseUnit: "sack", UnitToKgFactor: 50})
	purchaseRepo.stocks[soy.ID] = &entity.IngredientStock{
		IngredientID:       soy.ID,
		CumulativeIntakeKg: 100,
		CurrentBalanceKg:   100,
		AverageCostPerKg:   2.00,
	}

	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		IngredientID: soy.ID,
		Date:         time.Now(),
		Quantity:     2,
		UnitPrice:    150, // 3.00/kg
	})
	require.NoError(t, err)

	assert.InDelta(t, 3.00, purchaseRepo.lastIntake.AverageCostPerKg, 1e-9)
	assert.InDelta(t, 200.0, purchaseRepo.lastIntake.CurrentBalanceKg, 1e-9)
}

func TestCreatePurchaseWeightedAverageBlendsCost(t *testing.T) {
	svc, ingredientRepo, purchaseRepo := newPurchaseFixture(enum.CostingPolicyWeightedAverage)

	soy := ingredientRepo.add(&entity.Ingredient{Name: "Soybean Meal", PurchaseUnit: "sack", UnitToKgFactor: 50})
	purchaseRepo.stocks[soy.ID] = &entity.IngredientStock{
		IngredientID:       soy.ID,
		CumulativeIntakeKg: 100,
		CurrentBalanceKg:   100,
		AverageCostPerKg:   2.00,
	}

	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		IngredientID: soy.ID,
		Date:         time.Now(),
		Quantity:     2,
		UnitPrice:    150, // 100 kg at 3.00/kg
	})
	require.NoError(t, err)

	// (2.00*100 + 3.00*100) / 200 = 2.50
	assert.InDelta(t, 2.50, purchaseRepo.lastIntake.AverageCostPerKg, 1e-9)
}

func TestCreatePurchaseValidation(t *testing.T) {
	svc, ingredientRepo, _ := newPurchaseFixture(enum.CostingPolicyLastPurchase)
	corn := ingredientRepo.add(&entity.Ingredient{Name: "Corn", PurchaseUnit: "sack", UnitToKgFactor: 50})

	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		IngredientID: corn.ID,
		Date:         time.Now(),
		Quantity:     0,
		UnitPrice:    40,
	})
	assert.Error(t, err)

	_, err = svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		IngredientID: corn.ID,
		Date:         time.Now(),
		Quantity:     1,
		UnitPrice:    -1,
	})
	assert.Error(t, err)

	_, err = svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		IngredientID: uuid.New(),
		Date:         time.Now(),
		Quantity:     1,
		UnitPrice:    40,
	})
	assert.Error(t, err)
}

func TestCreatePurchasePublishesStockEvent(t *testing.T) {
	ingredientRepo := newFakeIngredientRepo()
	purchaseRepo := newFakePurchaseRepo()
	bus := events.NewBus()
	svc := NewPurchaseService(purchaseRepo, ingredientRepo, enum.CostingPolicyLastPurchase, bus)

	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	corn := ingredientRepo.add(&entity.Ingredient{Name: "Corn", PurchaseUnit: "sack", UnitToKgFactor: 50})
	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		IngredientID: corn.ID,
		Date:         time.Now(),
		Quantity:     10,
		UnitPrice:    40,
	})
	require.NoError(t, err)

	select {
	case evt := <-ch:
		assert.Equal(t, events.TypeIngredientStock, evt.Type)
	default:
		t.Fatal("expected a stock event")
	}
}
