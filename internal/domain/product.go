package domain

// Store identifies which retailer a record was loaded from.
type Store string

// Supported retailers. The value doubles as the CSV cell and the sort key.
const (
	StoreTarget  Store = "Target"
	StoreSafeway Store = "Safeway"
	StoreCostco  Store = "Costco"
)

// CalorieStatus tracks how far a record has made it through enrichment.
type CalorieStatus int

const (
	// CaloriePending means the record has been loaded but not yet classified.
	CaloriePending CalorieStatus = iota
	// CalorieKnown means a lookup succeeded and PerServing holds the value.
	CalorieKnown
	// CalorieUnknown means the record is food but both lookup tiers missed.
	CalorieUnknown
	// CalorieNotApplicable means the record was classified as non-food.
	CalorieNotApplicable
)

// CalorieInfo is the enrichment result attached to a record.
type CalorieInfo struct {
	Status     CalorieStatus
	PerServing float64
}

// ProductRecord is one row of the output table.
type ProductRecord struct {
	Store    Store
	Name     string
	Location string
	// PriceUSD is nil when the raw price text contained no numeric token.
	PriceUSD *float64
	Calories CalorieInfo
}
