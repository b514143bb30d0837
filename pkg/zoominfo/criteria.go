package zoominfo

// CompanyCriteria holds the firmographic filters shared by the contact and
// company search operations. Field semantics follow the remote API; no local
// validation is applied.
type CompanyCriteria struct {
	CompanyTicker                        []string `yaml:"company_ticker"`
	CompanyDescription                   *string  `yaml:"company_description"`
	CompanyType                          *string  `yaml:"company_type"`
	Address                              *string  `yaml:"address"`
	Street                               *string  `yaml:"street"`
	ZipCode                              *string  `yaml:"zip_code"`
	State                                *string  `yaml:"state"`
	Country                              *string  `yaml:"country"`
	Continent                            *string  `yaml:"continent"`
	CompanyID                            *string  `yaml:"company_id"`
	CompanyName                          *string  `yaml:"company_name"`
	CompanyWebsite                       *string  `yaml:"company_website"`
	ParentID                             *string  `yaml:"parent_id"`
	UltimateParentID                     *string  `yaml:"ultimate_parent_id"`
	ZipCodeRadiusMiles                   *string  `yaml:"zip_code_radius_miles"`
	HashTagString                        *string  `yaml:"hash_tag_string"`
	TechAttributeTagList                 *string  `yaml:"tech_attribute_tag_list"`
	SubUnitTypes                         *string  `yaml:"sub_unit_types"`
	PrimaryIndustriesOnly                *bool    `yaml:"primary_industries_only"`
	IndustryCodes                        *string  `yaml:"industry_codes"`
	IndustryKeywords                     *string  `yaml:"industry_keywords"`
	SICCodes                             *string  `yaml:"sic_codes"`
	NAICSCodes                           *string  `yaml:"naics_codes"`
	Revenue                              *string  `yaml:"revenue"`
	RevenueMin                           *int     `yaml:"revenue_min"`
	RevenueMax                           *int     `yaml:"revenue_max"`
	EmployeeRangeMin                     *string  `yaml:"employee_range_min"`
	EmployeeRangeMax                     *string  `yaml:"employee_range_max"`
	EmployeeCount                        *string  `yaml:"employee_count"`
	CompanyRanking                       *string  `yaml:"company_ranking"`
	MetroRegion                          *string  `yaml:"metro_region"`
	LocationSearchType                   *string  `yaml:"location_search_type"`
	FundingAmountMin                     *int     `yaml:"funding_amount_min"`
	FundingAmountMax                     *int     `yaml:"funding_amount_max"`
	FundingStartDate                     *string  `yaml:"funding_start_date"`
	FundingEndDate                       *string  `yaml:"funding_end_date"`
	ZoomInfoContactsMin                  *string  `yaml:"zoominfo_contacts_min"`
	ZoomInfoContactsMax                  *string  `yaml:"zoominfo_contacts_max"`
	ExcludedRegions                      *string  `yaml:"excluded_regions"`
	CompanyStructureIncludedSubUnitTypes *string  `yaml:"company_structure_included_sub_unit_types"`
	OneYearEmployeeGrowthRateMin         *string  `yaml:"one_year_employee_growth_rate_min"`
	OneYearEmployeeGrowthRateMax         *string  `yaml:"one_year_employee_growth_rate_max"`
	TwoYearEmployeeGrowthRateMin         *string  `yaml:"two_year_employee_growth_rate_min"`
	TwoYearEmployeeGrowthRateMax         *string  `yaml:"two_year_employee_growth_rate_max"`
	EngagementStartDate                  *string  `yaml:"engagement_start_date"`
	EngagementEndDate                    *string  `yaml:"engagement_end_date"`
	EngagementType                       []string `yaml:"engagement_type"`
}

func (c CompanyCriteria) apply(p payload) {
	p.setStrings("company_ticker", c.CompanyTicker)
	p.setString("company_description", c.CompanyDescription)
	p.setString("company_type", c.CompanyType)
	p.setString("address", c.Address)
	p.setString("street", c.Street)
	p.setString("zip_code", c.ZipCode)
	p.setString("state", c.State)
	p.setString("country", c.Country)
	p.setString("continent", c.Continent)
	p.setString("company_id", c.CompanyID)
	p.setString("company_name", c.CompanyName)
	p.setString("company_website", c.CompanyWebsite)
	p.setString("parent_id", c.ParentID)
	p.setString("ultimate_parent_id", c.UltimateParentID)
	p.setString("zip_code_radius_miles", c.ZipCodeRadiusMiles)
	p.setString("hash_tag_string", c.HashTagString)
	p.setString("tech_attribute_tag_list", c.TechAttributeTagList)
	p.setString("sub_unit_types", c.SubUnitTypes)
	p.setBool("primary_industries_only", c.PrimaryIndustriesOnly)
	p.setString("industry_codes", c.IndustryCodes)
	p.setString("industry_keywords", c.IndustryKeywords)
	p.setString("sic_codes", c.SICCodes)
	p.setString("naics_codes", c.NAICSCodes)
	p.setString("revenue", c.Revenue)
	p.setInt("revenue_min", c.RevenueMin)
	p.setInt("revenue_max", c.RevenueMax)
	p.setString("employee_range_min", c.EmployeeRangeMin)
	p.setString("employee_range_max", c.EmployeeRangeMax)
	p.setString("employee_count", c.EmployeeCount)
	p.setString("company_ranking", c.CompanyRanking)
	p.setString("metro_region", c.MetroRegion)
	p.setString("location_search_type", c.LocationSearchType)
	p.setInt("funding_amount_min", c.FundingAmountMin)
	p.setInt("funding_amount_max", c.FundingAmountMax)
	p.setString("funding_start_date", c.FundingStartDate)
	p.setString("funding_end_date", c.FundingEndDate)
	p.setString("zoominfo_contacts_min", c.ZoomInfoContactsMin)
	p.setString("zoominfo_contacts_max", c.ZoomInfoContactsMax)
	p.setString("excluded_regions", c.ExcludedRegions)
	p.setString("company_structure_included_sub_unit_types", c.CompanyStructureIncludedSubUnitTypes)
	p.setString("one_year_employee_growth_rate_min", c.OneYearEmployeeGrowthRateMin)
	p.setString("one_year_employee_growth_rate_max", c.OneYearEmployeeGrowthRateMax)
	p.setString("two_year_employee_growth_rate_min", c.TwoYearEmployeeGrowthRateMin)
	p.setString("two_year_employee_growth_rate_max", c.TwoYearEmployeeGrowthRateMax)
	p.setString("engagement_start_date", c.EngagementStartDate)
	p.setString("engagement_end_date", c.EngagementEndDate)
	p.setStrings("engagement_type", c.EngagementType)
}

// PageCriteria holds paging and ordering filters common to both searches.
type PageCriteria struct {
	RPP       *int    `yaml:"rpp"`
	Page      *int    `yaml:"page"`
	SortBy    *string `yaml:"sort_by"`
	SortOrder *string `yaml:"sort_order"`
}

func (c PageCriteria) apply(p payload) {
	p.setInt("rpp", c.RPP)
	p.setInt("page", c.Page)
	p.setString("sort_by", c.SortBy)
	p.setString("sort_order", c.SortOrder)
}
