package enum

// StockPolicy names how a mutator reacts to an inventory shortfall.
//
// Feed production is permissive: a shortfall clamps the debit at zero, emits
// a warning and the production still completes. Sales are hard-blocking: a
// shortfall rejects the operation outright.
type StockPolicy int

const (
	// StockPolicyPermissive clamps debits at zero and proceeds with a warning.
	StockPolicyPermissive StockPolicy = 0
	// StockPolicyBlocking rejects the operation on insufficient stock.
	StockPolicyBlocking StockPolicy = 1
)

func (p StockPolicy) String() string {
	return [...]string{"Permissive", "Blocking"}[p]
}

// CostingPolicy names how purchase intake updates an ingredient's average
// cost per kg. Selected via COSTING_POLICY.
type CostingPolicy string

const (
	// CostingPolicyLastPurchase overwrites the average cost with the latest
	// purchase's price per kg.
	CostingPolicyLastPurchase CostingPolicy = "last_purchase"
	// CostingPolicyWeightedAverage maintains a moving weighted average across
	// purchases.
	CostingPolicyWeightedAverage CostingPolicy = "weighted_average"
)

// Valid reports whether the policy is one of the known costing policies.
func (p CostingPolicy) Valid() bool {
	return p == CostingPolicyLastPurchase || p == CostingPolicyWeightedAverage
}
