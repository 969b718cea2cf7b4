package domain

// Category groups catalog services.
type Category string

// Catalog categories.
const (
	// CategoryAll is the filter pseudo-category that matches every service.
	CategoryAll Category = "all"

	// CategoryBenefits covers income and housing support.
	CategoryBenefits Category = "benefits"

	// CategoryFamily covers support for families and children.
	CategoryFamily Category = "family"

	// CategoryEmployment covers support while looking for work.
	CategoryEmployment Category = "employment"

	// CategoryEducation covers student support.
	CategoryEducation Category = "education"

	// CategoryTransport covers travel and parking support.
	CategoryTransport Category = "transport"
)

// IsValid returns true if the category is a real catalog category.
// CategoryAll is a filter value, not a category, and is not valid here.
func (c Category) IsValid() bool {
	switch c {
	case CategoryBenefits, CategoryFamily, CategoryEmployment, CategoryEducation, CategoryTransport:
		return true
	default:
		return false
	}
}

// IsFilter returns true if the category can be used to filter the catalog.
func (c Category) IsFilter() bool {
	return c == CategoryAll || c.IsValid()
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Label returns the display label shown on category chips.
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All Services"
	case CategoryBenefits:
		return "Benefits & Support"
	case CategoryFamily:
		return "Family & Children"
	case CategoryEmployment:
		return "Employment"
	case CategoryEducation:
		return "Education"
	case CategoryTransport:
		return "Transport"
	default:
		return string(c)
	}
}

// AllCategories returns the filter values in display order, starting with CategoryAll.
func AllCategories() []Category {
	return []Category{
		CategoryAll,
		CategoryBenefits,
		CategoryFamily,
		CategoryEmployment,
		CategoryEducation,
		CategoryTransport,
	}
}

// ParseCategory converts a filter value into a Category.
// An empty string selects CategoryAll.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryAll, nil
	}
	c := Category(s)
	if !c.IsFilter() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Service is an immutable catalog entry.
type Service struct {
	// ID is the stable identifier used in URLs (e.g. "universal-credit").
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Description summarises what the service provides.
	Description string `json:"description"`

	// Eligibility is a short eligibility hint.
	Eligibility string `json:"eligibility"`

	// EstimatedTime is the time-to-complete range, e.g. "30-45 minutes".
	EstimatedTime string `json:"estimated_time"`

	// Category is the catalog category.
	Category Category `json:"category"`

	// Popular marks services listed in the Popular Services section.
	Popular bool `json:"popular"`

	// Available marks services that can be applied for online.
	// Other services are shown as "Coming soon".
	Available bool `json:"available"`
}

// CategoryCount pairs a filter value with the number of catalog entries in it.
type CategoryCount struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
}
