package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
)

// ReportService builds period reports from the append-only logs. Reports
// never mutate state; they fold the raw records at read time.
type ReportService struct {
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	expenseRepo  repository.ExpenseRepository
	eggRepo      repository.EggRepository
	shedRepo     repository.ShedRepository
}

// NewReportService creates a new report service
func NewReportService(
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
	eggRepo repository.EggRepository,
	shedRepo repository.ShedRepository,
) *ReportService {
	return &ReportService{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
		eggRepo:      eggRepo,
		shedRepo:     shedRepo,
	}
}

// FinancialLine is one dated movement in the financial statement
type FinancialLine struct {
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"` // sale, purchase or expense
	Description string    `json:"description"`
	Inflow      float64   `json:"inflow"`
	Outflow     float64   `json:"outflow"`
	Balance     float64   `json:"balance"`
}

// FinancialReport is the period statement: every inflow and outflow dated
// within [start, end], ordered by date with a running balance.
type FinancialReport struct {
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	TotalInflow  float64         `json:"total_inflow"`
	TotalOutflow float64         `json:"total_outflow"`
	NetBalance   float64         `json:"net_balance"`
	Lines        []FinancialLine `json:"lines"`
}

// BuildFinancialReport folds paid sales (inflow), purchases and expenses
// (outflow) dated within the inclusive period into a running-balance
// statement. Pending credit sales are excluded until settled; a sale counts
// on its sale date, not its payment date.
func (s *ReportService) BuildFinancialReport(ctx context.Context, start, end time.Time) (*FinancialReport, error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("End date cannot be before start date")
	}

	sales, err := s.saleRepo.ListPaidBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	lines := make([]FinancialLine, 0, len(sales)+len(purchases)+len(expenses))
	for _, sale := range sales {
		lines = append(lines, FinancialLine{
			Date:        sale.Date,
			Kind:        "sale",
			Description: fmt.Sprintf("Sale of %d %s to %s", sale.QuantitySold, sale.Product, sale.Customer),
			Inflow:      sale.TotalValue,
		})
	}
	for _, purchase := range purchases {
		lines = append(lines, FinancialLine{
			Date:        purchase.Date,
			Kind:        "purchase",
			Description: fmt.Sprintf("Purchase of %.2f %s of %s", purchase.Quantity, purchase.Ingredient.PurchaseUnit, purchase.Ingredient.Name),
			Outflow:     purchase.TotalValue,
		})
	}
	for _, expense := range expenses {
		lines = append(lines, FinancialLine{
			Date:        expense.Date,
			Kind:        "expense",
			Description: expense.Description,
			Outflow:     expense.Amount,
		})
	}

	// Stable sort keeps same-day lines in their per-source order.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	report := &FinancialReport{
		StartDate: start,
		EndDate:   end,
		Lines:     lines,
	}
	balance := 0.0
	for i := range lines {
		balance += lines[i].Inflow - lines[i].Outflow
		lines[i].Balance = balance
		report.TotalInflow += lines[i].Inflow
		report.TotalOutflow += lines[i].Outflow
	}
	report.NetBalance = report.TotalInflow - report.TotalOutflow

	return report, nil
}

// ShedProductionSummary aggregates one shed's period activity
type ShedProductionSummary struct {
	ShedID     uuid.UUID `json:"shed_id"`
	ShedName   string    `json:"shed_name"`
	GoodEggs   int       `json:"good_eggs"`
	BrokenEggs int       `json:"broken_eggs"`
	Deaths     int       `json:"deaths"`
}

// ProductionReport is the per-shed egg and mortality summary for a period
type ProductionReport struct {
	StartDate       time.Time               `json:"start_date"`
	EndDate         time.Time               `json:"end_date"`
	TotalGoodEggs   int                     `json:"total_good_eggs"`
	TotalBrokenEggs int                     `json:"total_broken_eggs"`
	TotalDeaths     int                     `json:"total_deaths"`
	Sheds           []ShedProductionSummary `json:"sheds"`
}

// BuildProductionReport aggregates egg production and mortality per shed for
// the inclusive period. Sheds deleted since the records were written still
// appear, under the name denormalized on their records.
func (s *ReportService) BuildProductionReport(ctx context.Context, start, end time.Time) (*ProductionReport, error) {
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("End date cannot be before start date")
	}

	eggs, err := s.eggRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	mortalities, err := s.shedRepo.MortalitiesBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	byShed := make(map[uuid.UUID]*ShedProductionSummary)
	var order []uuid.UUID
	summaryFor := func(shedID uuid.UUID, name string) *ShedProductionSummary {
		if summary, ok := byShed[shedID]; ok {
			if summary.ShedName == "" {
				summary.ShedName = name
			}
			return summary
		}
		summary := &ShedProductionSummary{ShedID: shedID, ShedName: name}
		byShed[shedID] = summary
		order = append(order, shedID)
		return summary
	}

	report := &ProductionReport{StartDate: start, EndDate: end}
	for _, record := range eggs {
		summary := summaryFor(record.ShedID, record.ShedName)
		summary.GoodEggs += record.GoodEggs
		summary.BrokenEggs += record.BrokenEggs
		report.TotalGoodEggs += record.GoodEggs
		report.TotalBrokenEggs += record.BrokenEggs
	}
	for _, event := range mortalities {
		summary := summaryFor(event.ShedID, event.ShedName)
		summary.Deaths += event.Count
		report.TotalDeaths += event.Count
	}

	report.Sheds = make([]ShedProductionSummary, 0, len(order))
	for _, shedID := range order {
		report.Sheds = append(report.Sheds, *byShed[shedID])
	}
	sort.SliceStable(report.Sheds, func(i, j int) bool {
		return report.Sheds[i].ShedName < report.Sheds[j].ShedName
	})

	return report, nil
}
