package zoominfo

// ContactQuery is the full filter set accepted by the contact search
// endpoint. Nil fields are omitted from the request body; set fields are sent
// under their wire key (see wireKey). Values are passed through untouched,
// the remote API is the sole validator.
type ContactQuery struct {
	PersonID                *string  `yaml:"person_id"`
	EmailAddress            *string  `yaml:"email_address"`
	HashedEmail             *string  `yaml:"hashed_email"`
	FullName                *string  `yaml:"full_name"`
	FirstName               *string  `yaml:"first_name"`
	MiddleInitial           *string  `yaml:"middle_initial"`
	LastName                *string  `yaml:"last_name"`
	JobTitle                *string  `yaml:"job_title"`
	ExcludeJobTitle         *string  `yaml:"exclude_job_title"`
	ManagementLevel         *string  `yaml:"management_level"`
	ExcludeManagementLevel  *string  `yaml:"exclude_management_level"`
	BoardMember             *string  `yaml:"board_member"`
	ExcludePartialProfiles  *bool    `yaml:"exclude_partial_profiles"`
	ExecutivesOnly          *bool    `yaml:"executives_only"`
	RequiredFields          *string  `yaml:"required_fields"`
	ContactAccuracyScoreMin *string  `yaml:"contact_accuracy_score_min"`
	ContactAccuracyScoreMax *string  `yaml:"contact_accuracy_score_max"`
	JobFunction             *string  `yaml:"job_function"`
	LastUpdatedInMonths     *int     `yaml:"last_updated_in_months"`
	HasBeenNotified         *string  `yaml:"has_been_notified"`
	CompanyPastOrPresent    *string  `yaml:"company_past_or_present"`
	School                  *string  `yaml:"school"`
	Degree                  *string  `yaml:"degree"`
	LocationCompanyID       []string `yaml:"location_company_id"`
	LastUpdatedDateAfter    *string  `yaml:"last_updated_date_after"`
	ValidDateAfter          *string  `yaml:"valid_date_after"`
	Phone                   []string `yaml:"phone"`
	PositionStartDateMin    *string  `yaml:"position_start_date_min"`
	PositionStartDateMax    *string  `yaml:"position_start_date_max"`
	SupplementalEmail       []string `yaml:"supplemental_email"`
	WebReferences           []string `yaml:"web_references"`
	BuyingGroup             []string `yaml:"buying_group"`
	TechSkills              []string `yaml:"tech_skills"`
	YearsOfExperience       *string  `yaml:"years_of_experience"`
	Department              *string  `yaml:"department"`
	ExactJobTitle           *string  `yaml:"exact_job_title"`

	CompanyCriteria `yaml:",inline"`
	PageCriteria    `yaml:",inline"`

	// ExtraFilters are merged into the request body verbatim after the named
	// filters, with no wire-key conversion, and win on key collision.
	ExtraFilters map[string]any `yaml:"extra_filters"`
}

func (q ContactQuery) payload() payload {
	p := payload{}
	p.setString("person_id", q.PersonID)
	p.setString("email_address", q.EmailAddress)
	p.setString("hashed_email", q.HashedEmail)
	p.setString("full_name", q.FullName)
	p.setString("first_name", q.FirstName)
	p.setString("middle_initial", q.MiddleInitial)
	p.setString("last_name", q.LastName)
	p.setString("job_title", q.JobTitle)
	p.setString("exclude_job_title", q.ExcludeJobTitle)
	p.setString("management_level", q.ManagementLevel)
	p.setString("exclude_management_level", q.ExcludeManagementLevel)
	p.setString("board_member", q.BoardMember)
	p.setBool("exclude_partial_profiles", q.ExcludePartialProfiles)
	p.setBool("executives_only", q.ExecutivesOnly)
	p.setString("required_fields", q.RequiredFields)
	p.setString("contact_accuracy_score_min", q.ContactAccuracyScoreMin)
	p.setString("contact_accuracy_score_max", q.ContactAccuracyScoreMax)
	p.setString("job_function", q.JobFunction)
	p.setInt("last_updated_in_months", q.LastUpdatedInMonths)
	p.setString("has_been_notified", q.HasBeenNotified)
	p.setString("company_past_or_present", q.CompanyPastOrPresent)
	p.setString("school", q.School)
	p.setString("degree", q.Degree)
	p.setStrings("location_company_id", q.LocationCompanyID)
	p.setString("last_updated_date_after", q.LastUpdatedDateAfter)
	p.setString("valid_date_after", q.ValidDateAfter)
	p.setStrings("phone", q.Phone)
	p.setString("position_start_date_min", q.PositionStartDateMin)
	p.setString("position_start_date_max", q.PositionStartDateMax)
	p.setStrings("supplemental_email", q.SupplementalEmail)
	p.setStrings("web_references", q.WebReferences)
	p.setStrings("buying_group", q.BuyingGroup)
	p.setStrings("tech_skills", q.TechSkills)
	p.setString("years_of_experience", q.YearsOfExperience)
	p.setString("department", q.Department)
	p.setString("exact_job_title", q.ExactJobTitle)
	q.CompanyCriteria.apply(p)
	q.PageCriteria.apply(p)
	p.merge(q.ExtraFilters)
	return p
}
