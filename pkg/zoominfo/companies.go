package zoominfo

// CompanyQuery is the full filter set accepted by the company search
// endpoint. It shares the firmographic and paging criteria with ContactQuery
// and adds company-only filters such as department budgets.
type CompanyQuery struct {
	MarketingDepartmentBudgetMin *int     `yaml:"marketing_department_budget_min"`
	MarketingDepartmentBudgetMax *int     `yaml:"marketing_department_budget_max"`
	FinanceDepartmentBudgetMin   *int     `yaml:"finance_department_budget_min"`
	FinanceDepartmentBudgetMax   *int     `yaml:"finance_department_budget_max"`
	ITDepartmentBudgetMin        *int     `yaml:"it_department_budget_min"`
	ITDepartmentBudgetMax        *int     `yaml:"it_department_budget_max"`
	HRDepartmentBudgetMin        *int     `yaml:"hr_department_budget_min"`
	HRDepartmentBudgetMax        *int     `yaml:"hr_department_budget_max"`
	Certified                    *int     `yaml:"certified"`
	ExcludeDefunctCompanies      *bool    `yaml:"exclude_defunct_companies"`
	BusinessModel                []string `yaml:"business_model"`

	CompanyCriteria `yaml:",inline"`
	PageCriteria    `yaml:",inline"`

	// ExtraFilters are merged into the request body verbatim after the named
	// filters, with no wire-key conversion, and win on key collision.
	ExtraFilters map[string]any `yaml:"extra_filters"`
}

func (q CompanyQuery) payload() payload {
	p := payload{}
	p.setInt("marketing_department_budget_min", q.MarketingDepartmentBudgetMin)
	p.setInt("marketing_department_budget_max", q.MarketingDepartmentBudgetMax)
	p.setInt("finance_department_budget_min", q.FinanceDepartmentBudgetMin)
	p.setInt("finance_department_budget_max", q.FinanceDepartmentBudgetMax)
	p.setInt("it_department_budget_min", q.ITDepartmentBudgetMin)
	p.setInt("it_department_budget_max", q.ITDepartmentBudgetMax)
	p.setInt("hr_department_budget_min", q.HRDepartmentBudgetMin)
	p.setInt("hr_department_budget_max", q.HRDepartmentBudgetMax)
	p.setInt("certified", q.Certified)
	p.setBool("exclude_defunct_companies", q.ExcludeDefunctCompanies)
	p.setStrings("business_model", q.BusinessModel)
	q.CompanyCriteria.apply(p)
	q.PageCriteria.apply(p)
	p.merge(q.ExtraFilters)
	return p
}
