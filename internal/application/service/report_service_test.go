package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	svc          *ReportService
	saleRepo     *fakeSaleRepo
	purchaseRepo *fakePurchaseRepo
	expenseRepo  *fakeExpenseRepo
	eggRepo      *fakeEggRepo
	shedRepo     *fakeShedRepo
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		saleRepo:     newFakeSaleRepo(),
		purchaseRepo: newFakePurchaseRepo(),
		expenseRepo:  newFakeExpenseRepo(),
		eggRepo:      &fakeEggRepo{},
		shedRepo:     newFakeShedRepo(),
	}
	f.svc = NewReportService(f.saleRepo, f.purchaseRepo, f.expenseRepo, f.eggRepo, f.shedRepo)
	return f
}

func day(d int) time.Time {
	return time.Date(2026, 7, d, 0, 0, 0, 0, time.UTC)
}

func TestFinancialReportRunningBalance(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	paid := time.Now()
	f.saleRepo.sales[uuid.New()] = &entity.SaleRecord{
		ID: uuid.New(), Date: day(5), Customer: "Mercado", Product: "Eggs",
		QuantitySold: 100, UnitPrice: 0.5, TotalValue: 50,
		PaymentStatus: enum.PaymentStatusPaid, PaymentDate: &paid,
	}
	f.purchaseRepo.records = append(f.purchaseRepo.records, &entity.PurchaseRecord{
		ID: uuid.New(), Date: day(2), Quantity: 10, TotalValue: 400,
		Ingredient: entity.Ingredient{Name: "Corn", PurchaseUnit: "sacks"},
	})
	f.expenseRepo.expenses = append(f.expenseRepo.expenses, &entity.ExpenseRecord{
		ID: uuid.New(), Date: day(8), Description: "Vet visit", Amount: 120,
	})

	report, err := f.svc.BuildFinancialReport(ctx, day(1), day(31))
	require.NoError(t, err)

	require.Len(t, report.Lines, 3)
	// Date ascending: purchase (day 2), sale (day 5), expense (day 8).
	assert.Equal(t, "purchase", report.Lines[0].Kind)
	assert.Equal(t, "sale", report.Lines[1].Kind)
	assert.Equal(t, "expense", report.Lines[2].Kind)

	assert.InDelta(t, -400.0, report.Lines[0].Balance, 1e-9)
	assert.InDelta(t, -350.0, report.Lines[1].Balance, 1e-9)
	assert.InDelta(t, -470.0, report.Lines[2].Balance, 1e-9)

	assert.InDelta(t, 50.0, report.TotalInflow, 1e-9)
	assert.InDelta(t, 520.0, report.TotalOutflow, 1e-9)
	assert.InDelta(t, -470.0, report.NetBalance, 1e-9)
}

func TestFinancialReportExcludesPendingSales(t *testing.T) {
	f := newReportFixture()

	due := day(20)
	f.saleRepo.sales[uuid.New()] = &entity.SaleRecord{
		ID: uuid.New(), Date: day(5), Customer: "Padaria", Product: "Eggs",
		QuantitySold: 30, UnitPrice: 0.55, TotalValue: 16.5,
		PaymentStatus: enum.PaymentStatusPending, DueDate: &due,
	}

	report, err := f.svc.BuildFinancialReport(context.Background(), day(1), day(31))
	require.NoError(t, err)
	assert.Empty(t, report.Lines)
	assert.Zero(t, report.TotalInflow)
}

func TestFinancialReportRejectsInvertedPeriod(t *testing.T) {
	f := newReportFixture()
	_, err := f.svc.BuildFinancialReport(context.Background(), day(10), day(1))
	assert.Error(t, err)
}

func TestProductionReportAggregatesPerShed(t *testing.T) {
	f := newReportFixture()

	shedA := f.shedRepo.add(&entity.Shed{Name: "Shed A", BirdCount: 500})
	shedB := f.shedRepo.add(&entity.Shed{Name: "Shed B", BirdCount: 300})

	f.eggRepo.records = append(f.eggRepo.records,
		&entity.EggProductionRecord{ID: uuid.New(), ShedID: shedA.ID, ShedName: "Shed A", Date: day(3), GoodEggs: 400, BrokenEggs: 10},
		&entity.EggProductionRecord{ID: uuid.New(), ShedID: shedA.ID, ShedName: "Shed A", Date: day(4), GoodEggs: 380, BrokenEggs: 5},
		&entity.EggProductionRecord{ID: uuid.New(), ShedID: shedB.ID, ShedName: "Shed B", Date: day(3), GoodEggs: 250, BrokenEggs: 2},
	)
	f.shedRepo.mortalities = append(f.shedRepo.mortalities,
		&entity.MortalityEvent{ID: uuid.New(), ShedID: shedB.ID, ShedName: "Shed B", Date: day(6), Count: 4},
	)

	report, err := f.svc.BuildProductionReport(context.Background(), day(1), day(31))
	require.NoError(t, err)

	require.Len(t, report.Sheds, 2)
	assert.Equal(t, "Shed A", report.Sheds[0].ShedName)
	assert.Equal(t, 780, report.Sheds[0].GoodEggs)
	assert.Equal(t, 15, report.Sheds[0].BrokenEggs)
	assert.Equal(t, 0, report.Sheds[0].Deaths)

	assert.Equal(t, "Shed B", report.Sheds[1].ShedName)
	assert.Equal(t, 250, report.Sheds[1].GoodEggs)
	assert.Equal(t, 4, report.Sheds[1].Deaths)

	assert.Equal(t, 1030, report.TotalGoodEggs)
	assert.Equal(t, 17, report.TotalBrokenEggs)
	assert.Equal(t, 4, report.TotalDeaths)
}

func TestProductionReportKeepsDeletedShedName(t *testing.T) {
	f := newReportFixture()

	ghost := uuid.New()
	f.eggRepo.records = append(f.eggRepo.records,
		&entity.EggProductionRecord{ID: uuid.New(), ShedID: ghost, ShedName: "Old Shed", Date: day(3), GoodEggs: 100},
	)

	report, err := f.svc.BuildProductionReport(context.Background(), day(1), day(31))
	require.NoError(t, err)
	require.Len(t, report.Sheds, 1)
	assert.Equal(t, "Old Shed", report.Sheds[0].ShedName)
}

func TestProductionReportKeepsDeletedShedNameOnMortalities(t *testing.T) {
	f := newReportFixture()

	// A shed removed after its losses were logged: no live row, only the
	// name denormalized onto the event.
	ghost := uuid.New()
	f.shedRepo.mortalities = append(f.shedRepo.mortalities,
		&entity.MortalityEvent{ID: uuid.New(), ShedID: ghost, ShedName: "Retired Shed", Date: day(5), Count: 7},
	)

	report, err := f.svc.BuildProductionReport(context.Background(), day(1), day(31))
	require.NoError(t, err)
	require.Len(t, report.Sheds, 1)
	assert.Equal(t, "Retired Shed", report.Sheds[0].ShedName)
	assert.Equal(t, 7, report.Sheds[0].Deaths)
	assert.Equal(t, 7, report.TotalDeaths)
}
