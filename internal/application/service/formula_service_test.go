package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormulaFixture() (*FormulaService, *fakeIngredientRepo, *fakeStockRepo, *fakeFormulaRepo) {
	ingredientRepo := newFakeIngredientRepo()
	stockRepo := newFakeStockRepo()
	formulaRepo := newFakeFormulaRepo()
	svc := NewFormulaService(formulaRepo, ingredientRepo, stockRepo)
	return svc, ingredientRepo, stockRepo, formulaRepo
}

func stockAt(repo *fakeStockRepo, ingredientID uuid.UUID, costPerKg float64) {
	repo.ingredientStocks[ingredientID] = &entity.IngredientStock{
		IngredientID:     ingredientID,
		AverageCostPerKg: costPerKg,
		CurrentBalanceKg: 10000,
	}
}

func TestSaveFormulaPricesLinesFromLedger(t *testing.T) {
	svc, ingredientRepo, stockRepo, _ := newFormulaFixture()

	corn := ingredientRepo.add(&entity.Ingredient{Name: "Corn", PurchaseUnit: "sack", UnitToKgFactor: 50})
	soy := ingredientRepo.add(&entity.Ingredient{Name: "Soybean Meal", PurchaseUnit: "sack", UnitToKgFactor: 50})
	stockAt(stockRepo, corn.ID, 0.80)
	stockAt(stockRepo, soy.ID, 2.40)

	formula, err := svc.SaveFormula(context.Background(), &SaveFormulaInput{
		Name:      "Layer Phase 1",
		BirdPhase: enum.BirdPhasePostura,
		Lines: []FormulaLineInput{
			{IngredientID: corn.ID, QuantityKg: 600},
			{IngredientID: soy.ID, QuantityKg: 400},
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, formula.TotalWeightKg, 1e-9)
	// 600*0.80 + 400*2.40 = 480 + 960 = 1440
	assert.InDelta(t, 1440.0, formula.TotalCost, 1e-9)
	assert.InDelta(t, 1.44, formula.CostPerKg, 1e-9)
	assert.InDelta(t, 1440.0, formula.CostPer1000Kg(), 1e-9)

	require.Len(t, formula.Lines, 2)
	assert.InDelta(t, 0.80, formula.Lines[0].UnitCost, 1e-9)
	assert.InDelta(t, 480.0, formula.Lines[0].LineCost, 1e-9)
}

func TestSaveFormulaUnpricedIngredientCostsZero(t *testing.T) {
	svc, ingredientRepo, _, _ := newFormulaFixture()

	limestone := ingredientRepo.add(&entity.Ingredient{Name: "Limestone", PurchaseUnit: "kg", UnitToKgFactor: 1})

	formula, err := svc.SaveFormula(context.Background(), &SaveFormulaInput{
		Name:      "Mineral Mix",
		BirdPhase: enum.BirdPhasePostura,
		Lines:     []FormulaLineInput{{IngredientID: limestone.ID, QuantityKg: 100}},
	})
	require.NoError(t, err)

	assert.Zero(t, formula.TotalCost)
	assert.Zero(t, formula.CostPerKg)
}

func TestSaveFormulaValidation(t *testing.T) {
	svc, ingredientRepo, _, _ := newFormulaFixture()
	corn := ingredientRepo.add(&entity.Ingredient{Name: "Corn", PurchaseUnit: "sack", UnitToKgFactor: 50})

	_, err := svc.SaveFormula(context.Background(), &SaveFormulaInput{Name: "Empty"})
	assert.Error(t, err)

	_, err = svc.SaveFormula(context.Background(), &SaveFormulaInput{
		Name:  "Zero Line",
		Lines: []FormulaLineInput{{IngredientID: corn.ID, QuantityKg: 0}},
	})
	assert.Error(t, err)

	_, err = svc.SaveFormula(context.Background(), &SaveFormulaInput{
		Name: "Duplicated",
		Lines: []FormulaLineInput{
			{IngredientID: corn.ID, QuantityKg: 100},
			{IngredientID: corn.ID, QuantityKg: 50},
		},
	})
	assert.Error(t, err)

	_, err = svc.SaveFormula(context.Background(), &SaveFormulaInput{
		Name:  "Ghost",
		Lines: []FormulaLineInput{{IngredientID: uuid.New(), QuantityKg: 100}},
	})
	assert.Error(t, err)
}

func TestSaveFormulaUpdateKeepsID(t *testing.T) {
	svc, ingredientRepo, stockRepo, _ := newFormulaFixture()

	corn := ingredientRepo.add(&entity.Ingredient{Name: "Corn", PurchaseUnit: "sack", UnitToKgFactor: 50})
	stockAt(stockRepo, corn.ID, 0.80)

	created, err := svc.SaveFormula(context.Background(), &SaveFormulaInput{
		Name:  "Grower Mix",
		Lines: []FormulaLineInput{{IngredientID: corn.ID, QuantityKg: 500}},
	})
	require.NoError(t, err)

	updated, err := svc.SaveFormula(context.Background(), &SaveFormulaInput{
		ID:    &created.ID,
		Name:  "Grower Mix v2",
		Lines: []FormulaLineInput{{IngredientID: corn.ID, QuantityKg: 700}},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.InDelta(t, 700.0, updated.TotalWeightKg, 1e-9)
}
