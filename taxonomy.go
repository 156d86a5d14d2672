package carbonscope

// This file holds the GHG Protocol reporting taxonomy used by the entry
// form: scope descriptions, the categories legal under each scope, and the
// activities legal under each category. The hierarchy is enforced at entry
// time only; the importer accepts whatever combination the file declares.

// ScopeDescriptions explains each scope in one line.
var ScopeDescriptions = map[Scope]string{
	Scope1: "Direct emissions from owned or controlled sources",
	Scope2: "Indirect emissions from the generation of purchased energy",
	Scope3: "All other indirect emissions that occur in a company's value chain",
}

var scopeCategories = map[Scope][]string{
	Scope1: {"Stationary Combustion", "Mobile Combustion", "Fugitive Emissions", "Process Emissions"},
	Scope2: {"Electricity", "Steam", "Heating", "Cooling"},
	Scope3: {
		"Purchased Goods and Services",
		"Capital Goods",
		"Fuel- and Energy-Related Activities",
		"Upstream Transportation and Distribution",
		"Waste Generated in Operations",
		"Business Travel",
		"Employee Commuting",
		"Upstream Leased Assets",
		"Downstream Transportation and Distribution",
		"Processing of Sold Products",
		"Use of Sold Products",
		"End-of-Life Treatment of Sold Products",
		"Downstream Leased Assets",
		"Franchises",
		"Investments",
	},
}

var categoryActivities = map[string][]string{
	"Stationary Combustion":                      {"Boiler", "Furnace", "Generator"},
	"Mobile Combustion":                          {"Company Vehicle", "Fleet Vehicle", "Machinery"},
	"Fugitive Emissions":                         {"Refrigerant Leak", "SF6 Emissions"},
	"Process Emissions":                          {"Cement Production", "Chemical Production"},
	"Electricity":                                {"Office Electricity", "Manufacturing Electricity"},
	"Steam":                                      {"Industrial Steam", "Heating Steam"},
	"Heating":                                    {"Office Heating", "Industrial Heating"},
	"Cooling":                                    {"Office Cooling", "Industrial Cooling"},
	"Purchased Goods and Services":               {"Raw Materials", "Office Supplies"},
	"Capital Goods":                              {"Equipment Purchase", "Vehicle Purchase"},
	"Fuel- and Energy-Related Activities":        {"Upstream Fuel Production", "Transmission Losses"},
	"Upstream Transportation and Distribution":   {"Supplier Transport", "Inbound Logistics"},
	"Waste Generated in Operations":              {"Solid Waste", "Wastewater"},
	"Business Travel":                            {"Air Travel", "Ground Travel", "Hotel Stays"},
	"Employee Commuting":                         {"Private Vehicle", "Public Transport"},
	"Upstream Leased Assets":                     {"Leased Equipment", "Leased Vehicles"},
	"Downstream Transportation and Distribution": {"Outbound Logistics", "Customer Transport"},
	"Processing of Sold Products":                {"Intermediate Processing", "Final Assembly"},
	"Use of Sold Products":                       {"Product Operation", "Energy Consumption"},
	"End-of-Life Treatment of Sold Products":     {"Recycling", "Landfill"},
	"Downstream Leased Assets":                   {"Leased Equipment", "Leased Property"},
	"Franchises":                                 {"Franchise Operations", "Franchise Energy Use"},
	"Investments":                                {"Investment Emissions", "Financed Emissions"},
}

// Units lists the common measurement units offered by the entry form.
// Free-form units remain legal everywhere.
var Units = []string{
	"kWh", "MWh", "GJ",
	"liter", "gallon",
	"kg", "tonne",
	"km", "mile", "passenger-km",
	"cubic meter", "square meter",
	"hour", "day", "piece", "USD",
}

// Categories returns the categories legal under a scope, or nil for an
// unknown scope.
func Categories(s Scope) []string { return scopeCategories[s] }

// Activities returns the activities legal under a category, or nil for an
// unknown category.
func Activities(category string) []string { return categoryActivities[category] }

// InScope reports whether category belongs to the given scope's legal set.
func InScope(s Scope, category string) bool {
	for _, c := range scopeCategories[s] {
		if c == category {
			return true
		}
	}
	return false
}
