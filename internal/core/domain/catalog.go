package domain

// UniversalCreditID is the only service with an online application wizard.
const UniversalCreditID = "universal-credit"

// catalog is the static service table. It is never mutated; DefaultCatalog
// hands out copies.
var catalog = []Service{
	{
		ID:            UniversalCreditID,
		Title:         "Apply for Universal Credit",
		Description:   "Financial support if you're on a low income, out of work or cannot work.",
		Eligibility:   "Aged 18 or over and under State Pension age",
		EstimatedTime: "30-45 minutes",
		Category:      CategoryBenefits,
		Popular:       true,
		Available:     true,
	},
	{
		ID:            "housing-benefit",
		Title:         "Apply for Housing Benefit",
		Description:   "Help paying your rent if you're unemployed, on a low income or claiming benefits.",
		Eligibility:   "Renting and on a low income",
		EstimatedTime: "20-30 minutes",
		Category:      CategoryBenefits,
		Popular:       true,
	},
	{
		ID:            "council-tax-support",
		Title:         "Apply for Council Tax Support",
		Description:   "Get a reduction on your Council Tax bill if you're on a low income.",
		Eligibility:   "Responsible for paying Council Tax",
		EstimatedTime: "15-20 minutes",
		Category:      CategoryBenefits,
	},
	{
		ID:            "disability-benefits",
		Title:         "Apply for Disability Benefits",
		Description:   "Personal Independence Payment to help with extra living costs if you have a long-term health condition or disability.",
		Eligibility:   "Aged 16 or over with a long-term condition",
		EstimatedTime: "45-60 minutes",
		Category:      CategoryBenefits,
	},
	{
		ID:            "child-benefit",
		Title:         "Apply for Child Benefit",
		Description:   "Get money to help with the costs of bringing up a young person.",
		Eligibility:   "Responsible for someone under 16, or under 20 in approved education",
		EstimatedTime: "20-30 minutes",
		Category:      CategoryFamily,
		Popular:       true,
	},
	{
		ID:            "childcare-support",
		Title:         "Apply for Childcare Support",
		Description:   "Help with the cost of registered childcare while you work or study.",
		Eligibility:   "Working parents on a low income",
		EstimatedTime: "25-35 minutes",
		Category:      CategoryFamily,
	},
	{
		ID:            "jobseekers-allowance",
		Title:         "Apply for Jobseeker's Allowance",
		Description:   "Financial support while you look for work.",
		Eligibility:   "Unemployed or working less than 16 hours a week",
		EstimatedTime: "20-30 minutes",
		Category:      CategoryEmployment,
		Popular:       true,
	},
	{
		ID:            "student-finance",
		Title:         "Apply for Student Finance",
		Description:   "Loans and grants to help with tuition fees and living costs during higher education.",
		Eligibility:   "Starting a course at university or college",
		EstimatedTime: "40-60 minutes",
		Category:      CategoryEducation,
		Popular:       true,
	},
	{
		ID:            "blue-badge",
		Title:         "Apply for a Blue Badge",
		Description:   "A parking permit for people with mobility problems or a hidden disability.",
		Eligibility:   "Mobility problems or certain disabilities",
		EstimatedTime: "15-25 minutes",
		Category:      CategoryTransport,
	},
}

// DefaultCatalog returns a copy of the static service catalog in display order.
func DefaultCatalog() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}

// FindService returns the service with the given ID.
func FindService(services []Service, id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// CountByCategory returns one count per filter value, in AllCategories order.
// CategoryAll counts every service.
func CountByCategory(services []Service) []CategoryCount {
	perCategory := make(map[Category]int, len(services))
	for _, s := range services {
		perCategory[s.Category]++
	}

	cats := AllCategories()
	counts := make([]CategoryCount, 0, len(cats))
	for _, c := range cats {
		n := perCategory[c]
		if c == CategoryAll {
			n = len(services)
		}
		counts = append(counts, CategoryCount{Category: c, Label: c.Label(), Count: n})
	}
	return counts
}

// PopularServices returns the popular entries in catalog order.
func PopularServices(services []Service) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if s.Popular {
			out = append(out, s)
		}
	}
	return out
}
