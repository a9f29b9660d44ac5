package memory

import "testing"

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
	if len(catalog.Questions) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(catalog.Questions))
	}
	if len(catalog.Monsters) != 4 {
		t.Fatalf("expected 4 monsters, got %d", len(catalog.Monsters))
	}
	for _, q := range catalog.Questions {
		if q.Explanation == "" || q.Topic == "" {
			t.Errorf("question %q missing explanation or topic", q.ID)
		}
		if len(q.Options) < 2 {
			t.Errorf("question %q has too few options", q.ID)
		}
	}
}
