package carbonscope

import "testing"

func TestCategories(t *testing.T) {
	if got := len(Categories(Scope1)); got != 4 {
		t.Errorf("Scope 1 has %d categories, want 4", got)
	}
	if got := len(Categories(Scope3)); got != 15 {
		t.Errorf("Scope 3 has %d categories, want 15", got)
	}
	if Categories("Scope 4") != nil {
		t.Error("unknown scope should have no categories")
	}
}

func TestActivities(t *testing.T) {
	// Every category of every scope must have at least one activity.
	for _, scope := range Scopes {
		for _, category := range Categories(scope) {
			if len(Activities(category)) == 0 {
				t.Errorf("category %q has no activities", category)
			}
		}
	}
	if Activities("Underwater Basket Weaving") != nil {
		t.Error("unknown category should have no activities")
	}
}

func TestInScope(t *testing.T) {
	if !InScope(Scope2, "Electricity") {
		t.Error("Electricity belongs to Scope 2")
	}
	if InScope(Scope1, "Electricity") {
		t.Error("Electricity does not belong to Scope 1")
	}
}

func TestScopeDescriptions(t *testing.T) {
	for _, scope := range Scopes {
		if ScopeDescriptions[scope] == "" {
			t.Errorf("scope %q has no description", scope)
		}
	}
}
