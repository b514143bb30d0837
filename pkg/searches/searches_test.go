package searches

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadRegistryDecodesTypedFilters(t *testing.T) {
	path := writeFile(t, "searches.yaml", `
searches:
  - id: saas-ctos
    name: SaaS CTOs
    kind: contact
    filters:
      job_title: CTO
      country: United States
      executives_only: true
      tech_skills: [go, kubernetes]
      rpp: 25
    extra_filters:
      companyId: "999"
  - id: b2b-startups
    kind: company
    filters:
      business_model: [B2B]
      revenue_min: 1000
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if len(reg.All()) != 2 {
		t.Fatalf("expected 2 searches, got %d", len(reg.All()))
	}

	contact, ok := reg.ByID("saas-ctos")
	if !ok || contact.Kind != KindContact || contact.Contact == nil {
		t.Fatalf("saas-ctos not materialized as contact search: %#v", contact)
	}
	q := contact.Contact
	if q.JobTitle == nil || *q.JobTitle != "CTO" {
		t.Errorf("JobTitle = %v", q.JobTitle)
	}
	if q.Country == nil || *q.Country != "United States" {
		t.Errorf("Country = %v", q.Country)
	}
	if q.ExecutivesOnly == nil || !*q.ExecutivesOnly {
		t.Errorf("ExecutivesOnly = %v", q.ExecutivesOnly)
	}
	if len(q.TechSkills) != 2 {
		t.Errorf("TechSkills = %v", q.TechSkills)
	}
	if q.RPP == nil || *q.RPP != 25 {
		t.Errorf("RPP = %v", q.RPP)
	}
	if q.ExtraFilters["companyId"] != "999" {
		t.Errorf("ExtraFilters = %v", q.ExtraFilters)
	}
	if contact.Name != "SaaS CTOs" {
		t.Errorf("Name = %q", contact.Name)
	}

	company, ok := reg.ByID("b2b-startups")
	if !ok || company.Kind != KindCompany || company.Company == nil {
		t.Fatalf("b2b-startups not materialized as company search: %#v", company)
	}
	if company.Company.RevenueMin == nil || *company.Company.RevenueMin != 1000 {
		t.Errorf("RevenueMin = %v", company.Company.RevenueMin)
	}
	if company.Name != "b2b-startups" {
		t.Errorf("Name should default to id, got %q", company.Name)
	}
}

func TestLoadRegistryAcceptsJSON(t *testing.T) {
	path := writeFile(t, "searches.json", `{
  "searches": [
    {"id": "s1", "kind": "contact", "filters": {"company_id": "123"}}
  ]
}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	s, ok := reg.ByID("s1")
	if !ok || s.Contact == nil || s.Contact.CompanyID == nil || *s.Contact.CompanyID != "123" {
		t.Fatalf("json search not decoded: %#v", s)
	}
}

func TestLoadRegistryRejectsDuplicateIDs(t *testing.T) {
	path := writeFile(t, "searches.yaml", `
searches:
  - id: s1
    kind: contact
  - id: s1
    kind: company
`)

	if _, err := LoadRegistry(path); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestLoadRegistryRejectsUnknownKind(t *testing.T) {
	path := writeFile(t, "searches.yaml", `
searches:
  - id: s1
    kind: intent
`)

	if _, err := LoadRegistry(path); err == nil || !strings.Contains(err.Error(), "unsupported kind") {
		t.Fatalf("expected unsupported kind error, got %v", err)
	}
}

func TestLoadRegistryRejectsMissingKind(t *testing.T) {
	path := writeFile(t, "searches.yaml", `
searches:
  - id: s1
`)

	if _, err := LoadRegistry(path); err == nil || !strings.Contains(err.Error(), "kind is required") {
		t.Fatalf("expected kind required error, got %v", err)
	}
}
