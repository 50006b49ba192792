package nutrition

// FoodData Central nutrient ids, values in search results are per 100 g.
const (
	nutrientIDEnergy  = 1008
	nutrientIDProtein = 1003
	nutrientIDFat     = 1004
	nutrientIDCarbs   = 1005
)

// info https://fdc.nal.usda.gov/api-guide.html
type searchResponse struct {
	TotalHits   int          `json:"totalHits"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	Foods       []searchFood `json:"foods"`
}

type searchFood struct {
	FdcID         int            `json:"fdcId"`
	Description   string         `json:"description"`
	DataType      string         `json:"dataType"`
	BrandOwner    string         `json:"brandOwner,omitempty"`
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	NutrientID   int     `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}
