package repository

import "context"

// Snapshot maps each collection name to its full row set. It is the unit of
// export and import: one JSON object covering the whole store.
type Snapshot map[string]interface{}

// Collection names used as snapshot keys and as the reset allow-list. Keys
// must match exactly across export, import and reset.
const (
	CollectionIngredients       = "ingredients"
	CollectionIngredientStocks  = "ingredient_stocks"
	CollectionPurchases         = "purchase_records"
	CollectionFormulas          = "feed_formulas"
	CollectionFormulaLines      = "formula_lines"
	CollectionFeedProductions   = "feed_production_records"
	CollectionFeedStock         = "feed_stock"
	CollectionFeedConsumptions  = "feed_consumption_events"
	CollectionSheds             = "sheds"
	CollectionMortalities       = "mortality_events"
	CollectionHusbandry         = "husbandry_events"
	CollectionEggProductions    = "egg_production_records"
	CollectionEggStock          = "egg_stock"
	CollectionSales             = "sale_records"
	CollectionExpenses          = "expense_records"
	CollectionExpenseCategories = "expense_categories"
)

// SnapshotRepository defines the full-store export/import/reset surface
type SnapshotRepository interface {
	// Export reads every known collection into one snapshot object.
	Export(ctx context.Context) (Snapshot, error)
	// Import overwrites each collection present in the snapshot inside a
	// single transaction. Collections absent from the snapshot keep their
	// current contents.
	Import(ctx context.Context, snapshot map[string]interface{}) error
	// Reset deletes every collection on the allow-list and reseeds the
	// singleton stock rows and default categories. Anything outside the
	// allow-list is left untouched.
	Reset(ctx context.Context) error
}
