package zoominfo

import (
	"reflect"
	"testing"
)

func TestContactPayloadOmitsAbsentFilters(t *testing.T) {
	q := ContactQuery{}
	q.CompanyID = String("123")

	got := q.payload()
	want := payload{"companyId": "123"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("payload = %#v, want %#v", got, want)
	}
}

func TestContactPayloadExtraFiltersWinOnCollision(t *testing.T) {
	q := ContactQuery{
		ExtraFilters: map[string]any{"companyId": "999"},
	}
	q.CompanyID = String("123")

	got := q.payload()
	if got["companyId"] != "999" {
		t.Fatalf("companyId = %v, want extra filter to win with 999", got["companyId"])
	}
	if len(got) != 1 {
		t.Fatalf("payload has %d keys, want 1: %#v", len(got), got)
	}
}

func TestContactPayloadExtraFiltersKeptVerbatim(t *testing.T) {
	q := ContactQuery{
		ExtraFilters: map[string]any{"custom_raw_key": true},
	}

	got := q.payload()
	if _, ok := got["custom_raw_key"]; !ok {
		t.Fatalf("extra filter key should pass through untransformed: %#v", got)
	}
	if _, ok := got["customRawKey"]; ok {
		t.Fatalf("extra filter key must not be wire-cased: %#v", got)
	}
}

func TestContactPayloadTypedFilters(t *testing.T) {
	q := ContactQuery{
		JobTitle:       String("CTO"),
		ExecutivesOnly: Bool(true),
		TechSkills:     []string{"go", "kubernetes"},
	}
	q.RevenueMin = Int(1000)
	q.RPP = Int(25)

	got := q.payload()
	if got["jobTitle"] != "CTO" {
		t.Errorf("jobTitle = %v", got["jobTitle"])
	}
	if got["executivesOnly"] != true {
		t.Errorf("executivesOnly = %v", got["executivesOnly"])
	}
	if !reflect.DeepEqual(got["techSkills"], []string{"go", "kubernetes"}) {
		t.Errorf("techSkills = %v", got["techSkills"])
	}
	if got["revenueMin"] != 1000 {
		t.Errorf("revenueMin = %v", got["revenueMin"])
	}
	if got["rpp"] != 25 {
		t.Errorf("rpp = %v", got["rpp"])
	}
	if _, ok := got["firstName"]; ok {
		t.Errorf("absent filter leaked into payload: %#v", got)
	}
}

func TestCompanyPayloadBudgetsAndSharedCriteria(t *testing.T) {
	q := CompanyQuery{
		ITDepartmentBudgetMin:   Int(50),
		HRDepartmentBudgetMax:   Int(200),
		Certified:               Int(1),
		ExcludeDefunctCompanies: Bool(true),
		BusinessModel:           []string{"B2B"},
	}
	q.Country = String("United States")
	q.TwoYearEmployeeGrowthRateMin = String("10")

	got := q.payload()
	checks := map[string]any{
		"itDepartmentBudgetMin":        50,
		"hrDepartmentBudgetMax":        200,
		"certified":                    1,
		"excludeDefunctCompanies":      true,
		"country":                      "United States",
		"twoYearEmployeeGrowthRateMin": "10",
	}
	for k, want := range checks {
		if got[k] != want {
			t.Errorf("%s = %v, want %v", k, got[k], want)
		}
	}
	if !reflect.DeepEqual(got["businessModel"], []string{"B2B"}) {
		t.Errorf("businessModel = %v", got["businessModel"])
	}
	if len(got) != 7 {
		t.Errorf("payload has %d keys, want 7: %#v", len(got), got)
	}
}
