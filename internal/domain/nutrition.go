package domain

// OFFSearchResponse is the shape returned by the OpenFoodFacts search API.
type OFFSearchResponse struct {
	Products []OFFProduct `json:"products"`
}

// OFFProduct is a single product from an OpenFoodFacts search result. Only
// the nutriments mapping is requested via the fields selector.
type OFFProduct struct {
	Nutriments OFFNutriments `json:"nutriments"`
}

// OFFNutriments holds the kilocalorie fields used for calorie resolution.
// A field absent from the response decodes to zero, which callers treat the
// same as missing.
type OFFNutriments struct {
	EnergyKcalServing float64 `json:"energy-kcal_serving"`
	EnergyKcal100g    float64 `json:"energy-kcal_100g"`
}

// FDCSearchResponse is the shape returned by the USDA FoodData Central
// search API.
type FDCSearchResponse struct {
	Foods     []FDCFood `json:"foods"`
	TotalHits int       `json:"totalHits"`
}

// FDCFood is a single food item from an FDC search result.
type FDCFood struct {
	FdcID       int           `json:"fdcId"`
	Description string        `json:"description"`
	Nutrients   []FDCNutrient `json:"foodNutrients"`
}

// FDCNutrient is a single nutrient entry from FDC data.
type FDCNutrient struct {
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}
