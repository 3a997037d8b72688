package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// In-memory fakes for the repository interfaces. Mutators store what they
// are given; reads return copies of the stored state.

type fakeIngredientRepo struct {
	ingredients map[uuid.UUID]*entity.Ingredient
	inUse       map[uuid.UUID]bool
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{
		ingredients: make(map[uuid.UUID]*entity.Ingredient),
		inUse:       make(map[uuid.UUID]bool),
	}
}

func (f *fakeIngredientRepo) add(i *entity.Ingredient) *entity.Ingredient {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	f.ingredients[i.ID] = i
	return i
}

func (f *fakeIngredientRepo) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	f.add(ingredient)
	return nil
}

func (f *fakeIngredientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	return f.ingredients[id], nil
}

func (f *fakeIngredientRepo) GetByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	for _, i := range f.ingredients {
		if i.Name == name {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeIngredientRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	for _, id := range ids {
		if i, ok := f.ingredients[id]; ok {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeIngredientRepo) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	f.ingredients[ingredient.ID] = ingredient
	return nil
}

func (f *fakeIngredientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.ingredients, id)
	return nil
}

func (f *fakeIngredientRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Ingredient, int64, error) {
	var out []entity.Ingredient
	for _, i := range f.ingredients {
		out = append(out, *i)
	}
	return out, int64(len(out)), nil
}

func (f *fakeIngredientRepo) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.inUse[id], nil
}

type fakeStockRepo struct {
	ingredientStocks map[uuid.UUID]*entity.IngredientStock
	feedStock        *entity.FeedStock
	eggStock         *entity.EggStock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{
		ingredientStocks: make(map[uuid.UUID]*entity.IngredientStock),
		feedStock:        &entity.FeedStock{},
		eggStock:         &entity.EggStock{},
	}
}

func (f *fakeStockRepo) GetIngredientStock(ctx context.Context, ingredientID uuid.UUID) (*entity.IngredientStock, error) {
	return f.ingredientStocks[ingredientID], nil
}

func (f *fakeStockRepo) ListIngredientStocks(ctx context.Context) ([]entity.IngredientStock, error) {
	var out []entity.IngredientStock
	for _, s := range f.ingredientStocks {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStockRepo) GetFeedStock(ctx context.Context) (*entity.FeedStock, error) {
	return f.feedStock, nil
}

func (f *fakeStockRepo) GetEggStock(ctx context.Context) (*entity.EggStock, error) {
	return f.eggStock, nil
}

type fakePurchaseRepo struct {
	records    []*entity.PurchaseRecord
	stocks     map[uuid.UUID]*entity.IngredientStock
	lastIntake *entity.IngredientStock
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{stocks: make(map[uuid.UUID]*entity.IngredientStock)}
}

func (f *fakePurchaseRepo) CreateWithIntake(ctx context.Context, record *entity.PurchaseRecord, policy enum.CostingPolicy) (*entity.IngredientStock, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	f.records = append(f.records, record)

	stock, ok := f.stocks[record.IngredientID]
	if !ok {
		stock = &entity.IngredientStock{IngredientID: record.IngredientID}
		f.stocks[record.IngredientID] = stock
	}
	stock.ApplyIntake(record.TotalKg, record.PricePerKg, policy)
	f.lastIntake = stock
	return stock, nil
}

func (f *fakePurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakePurchaseRepo) List(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.PurchaseRecord, int64, error) {
	var out []entity.PurchaseRecord
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakePurchaseRepo) ListBetween(ctx context.Context, start, end time.Time) ([]entity.PurchaseRecord, error) {
	var out []entity.PurchaseRecord
	for _, r := range f.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeFormulaRepo struct {
	formulas map[uuid.UUID]*entity.FeedFormula
}

func newFakeFormulaRepo() *fakeFormulaRepo {
	return &fakeFormulaRepo{formulas: make(map[uuid.UUID]*entity.FeedFormula)}
}

func (f *fakeFormulaRepo) Upsert(ctx context.Context, formula *entity.FeedFormula) error {
	if formula.ID == uuid.Nil {
		formula.ID = uuid.New()
	}
	f.formulas[formula.ID] = formula
	return nil
}

func (f *fakeFormulaRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FeedFormula, error) {
	return f.formulas[id], nil
}

func (f *fakeFormulaRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.FeedFormula, int64, error) {
	var out []entity.FeedFormula
	for _, formula := range f.formulas {
		out = append(out, *formula)
	}
	return out, int64(len(out)), nil
}

func (f *fakeFormulaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.formulas, id)
	return nil
}

type fakeFeedRepo struct {
	productions  []*entity.FeedProductionRecord
	consumptions []*entity.FeedConsumptionEvent
	lastDebits   map[uuid.UUID]float64
}

func (f *fakeFeedRepo) CreateProduction(ctx context.Context, record *entity.FeedProductionRecord, debits map[uuid.UUID]float64) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	f.productions = append(f.productions, record)
	f.lastDebits = debits
	return nil
}

func (f *fakeFeedRepo) ListProductions(ctx context.Context, params *pagination.PaginationParams, startDate, endDate *time.Time) ([]entity.FeedProductionRecord, int64, error) {
	var out []entity.FeedProductionRecord
	for _, r := range f.productions {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeFeedRepo) CreateConsumption(ctx context.Context, event *entity.FeedConsumptionEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.consumptions = append(f.consumptions, event)
	return nil
}

func (f *fakeFeedRepo) ListConsumptions(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.FeedConsumptionEvent, int64, error) {
	var out []entity.FeedConsumptionEvent
	for _, e := range f.consumptions {
		if e.ShedID == shedID {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

type fakeShedRepo struct {
	sheds       map[uuid.UUID]*entity.Shed
	mortalities []*entity.MortalityEvent
	husbandry   []*entity.HusbandryEvent
}

func newFakeShedRepo() *fakeShedRepo {
	return &fakeShedRepo{sheds: make(map[uuid.UUID]*entity.Shed)}
}

func (f *fakeShedRepo) add(s *entity.Shed) *entity.Shed {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.sheds[s.ID] = s
	return s
}

func (f *fakeShedRepo) Create(ctx context.Context, shed *entity.Shed) error {
	f.add(shed)
	return nil
}

func (f *fakeShedRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shed, error) {
	return f.sheds[id], nil
}

func (f *fakeShedRepo) Update(ctx context.Context, shed *entity.Shed) error {
	f.sheds[shed.ID] = shed
	return nil
}

func (f *fakeShedRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.sheds, id)
	return nil
}

func (f *fakeShedRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Shed, int64, error) {
	var out []entity.Shed
	for _, s := range f.sheds {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeShedRepo) AddMortality(ctx context.Context, event *entity.MortalityEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.mortalities = append(f.mortalities, event)
	if shed, ok := f.sheds[event.ShedID]; ok {
		shed.BirdCount -= event.Count
		if shed.BirdCount < 0 {
			shed.BirdCount = 0
		}
		shed.CumulativeLosses += event.Count
	}
	return nil
}

func (f *fakeShedRepo) ListMortalities(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.MortalityEvent, int64, error) {
	var out []entity.MortalityEvent
	for _, e := range f.mortalities {
		if e.ShedID == shedID {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeShedRepo) MortalitiesBetween(ctx context.Context, start, end time.Time) ([]entity.MortalityEvent, error) {
	var out []entity.MortalityEvent
	for _, e := range f.mortalities {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeShedRepo) AddHusbandry(ctx context.Context, event *entity.HusbandryEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.husbandry = append(f.husbandry, event)
	return nil
}

func (f *fakeShedRepo) ListHusbandry(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.HusbandryEvent, int64, error) {
	var out []entity.HusbandryEvent
	for _, e := range f.husbandry {
		if e.ShedID == shedID {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

type fakeEggRepo struct {
	records []*entity.EggProductionRecord
}

func (f *fakeEggRepo) CreateProduction(ctx context.Context, record *entity.EggProductionRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeEggRepo) ListProductions(ctx context.Context, shedID *uuid.UUID, params *pagination.PaginationParams, startDate, endDate *time.Time) ([]entity.EggProductionRecord, int64, error) {
	var out []entity.EggProductionRecord
	for _, r := range f.records {
		if shedID != nil && r.ShedID != *shedID {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEggRepo) ListBetween(ctx context.Context, start, end time.Time) ([]entity.EggProductionRecord, error) {
	var out []entity.EggProductionRecord
	for _, r := range f.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	sales         map[uuid.UUID]*entity.SaleRecord
	rejectNext    bool
	debitedTotals int
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.SaleRecord)}
}

func (f *fakeSaleRepo) CreateWithStockDebit(ctx context.Context, sale *entity.SaleRecord) (bool, error) {
	if f.rejectNext {
		return false, nil
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	f.sales[sale.ID] = sale
	f.debitedTotals += sale.QuantitySold
	return true, nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error) {
	return f.sales[id], nil
}

func (f *fakeSaleRepo) Update(ctx context.Context, sale *entity.SaleRecord) error {
	f.sales[sale.ID] = sale
	return nil
}

func (f *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.SaleRecord, int64, error) {
	var out []entity.SaleRecord
	for _, s := range f.sales {
		if params.Status != nil && s.PaymentStatus != *params.Status {
			continue
		}
		if params.OverdueOnly && !s.Overdue(time.Now()) {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSaleRepo) ListPaidBetween(ctx context.Context, start, end time.Time) ([]entity.SaleRecord, error) {
	var out []entity.SaleRecord
	for _, s := range f.sales {
		if s.PaymentStatus != enum.PaymentStatusPaid {
			continue
		}
		if !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeExpenseRepo struct {
	categories map[uuid.UUID]*entity.ExpenseCategory
	expenses   []*entity.ExpenseRecord
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{categories: make(map[uuid.UUID]*entity.ExpenseCategory)}
}

func (f *fakeExpenseRepo) CreateCategory(ctx context.Context, category *entity.ExpenseCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeExpenseRepo) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	return f.categories[id], nil
}

func (f *fakeExpenseRepo) ListCategories(ctx context.Context) ([]entity.ExpenseCategory, error) {
	var out []entity.ExpenseCategory
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeExpenseRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.ExpenseRecord) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseRecord, error) {
	for _, e := range f.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range f.expenses {
		if e.ID == id {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeExpenseRepo) List(ctx context.Context, params *pagination.PaginationParams, categoryID *uuid.UUID, startDate, endDate *time.Time) ([]entity.ExpenseRecord, int64, error) {
	var out []entity.ExpenseRecord
	for _, e := range f.expenses {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeExpenseRepo) ListBetween(ctx context.Context, start, end time.Time) ([]entity.ExpenseRecord, error) {
	var out []entity.ExpenseRecord
	for _, e := range f.expenses {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, *e)
		}
	}
	return out, nil
}
