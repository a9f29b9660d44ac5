package guidelines

import "testing"

func TestDefaultPageIsValid(t *testing.T) {
	page, err := DefaultPage()
	if err != nil {
		t.Fatalf("DefaultPage: %v", err)
	}
	if len(page.Guidelines) != 6 {
		t.Fatalf("expected 6 guidelines, got %d", len(page.Guidelines))
	}
	if len(page.Outcomes) != 4 {
		t.Fatalf("expected 4 outcomes, got %d", len(page.Outcomes))
	}
	if len(page.Examples) != 5 {
		t.Fatalf("expected 5 examples, got %d", len(page.Examples))
	}
	for i, ex := range page.Examples {
		if ex.Title == "" || ex.BadCode == "" || ex.GoodCode == "" {
			t.Errorf("example %d is incomplete: %+v", i, ex)
		}
		if len(ex.Bullets) == 0 {
			t.Errorf("example %d has no bullets", i)
		}
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	base := func() Page {
		page, err := DefaultPage()
		if err != nil {
			t.Fatalf("DefaultPage: %v", err)
		}
		return page
	}

	tests := []struct {
		name   string
		mutate func(*Page)
	}{
		{"no guidelines", func(p *Page) { p.Guidelines = nil }},
		{"empty label", func(p *Page) {
			p.Guidelines = append([]string{""}, p.Guidelines[1:]...)
		}},
		{"weight count mismatch", func(p *Page) { p.FocusWeight = p.FocusWeight[:2] }},
		{"weight out of range", func(p *Page) {
			p.FocusWeight = append([]int{101}, p.FocusWeight[1:]...)
		}},
		{"row count mismatch", func(p *Page) { p.ImpactMap = p.ImpactMap[:3] }},
		{"ragged row", func(p *Page) {
			rows := make([][]int, len(p.ImpactMap))
			copy(rows, p.ImpactMap)
			rows[2] = []int{1, 2}
			p.ImpactMap = rows
		}},
		{"impact out of range", func(p *Page) {
			rows := make([][]int, len(p.ImpactMap))
			copy(rows, p.ImpactMap)
			rows[0] = []int{9, 4, 2, 2}
			p.ImpactMap = rows
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page := base()
			tc.mutate(&page)
			if err := page.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
