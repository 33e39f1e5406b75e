package digest

import "testing"

func TestDeduplicator_Run_CollapsesCaseAndWhitespaceVariants(t *testing.T) {
	dedup := NewDeduplicator()

	items := []Item{
		{Title: "World Bank approves loan", URL: "https://example.org/loan", Source: "World Bank News"},
		{Title: "  world bank APPROVES loan  ", URL: "HTTPS://EXAMPLE.ORG/LOAN", Source: "Devex"},
	}

	result := dedup.Run(items)

	if len(result) != 1 {
		t.Fatalf("Expected 1 unique item, got %d", len(result))
	}
	if result[0].Source != "World Bank News" {
		t.Errorf("First occurrence should win, got item from %s", result[0].Source)
	}
}

func TestDeduplicator_Run_Idempotent(t *testing.T) {
	dedup := NewDeduplicator()

	items := []Item{
		{Title: "Story one", URL: "https://a.example/1"},
		{Title: "Story one", URL: "https://a.example/1"},
		{Title: "Story two", URL: "https://a.example/2"},
	}

	once := dedup.Run(items)
	twice := dedup.Run(once)

	if len(once) != 2 {
		t.Fatalf("Expected 2 unique items, got %d", len(once))
	}
	if len(twice) != len(once) {
		t.Errorf("Second pass changed the result: %d vs %d", len(twice), len(once))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("Item %d changed between passes", i)
		}
	}
}

func TestDeduplicator_Run_SameTitleDifferentURLKept(t *testing.T) {
	dedup := NewDeduplicator()

	// Exact-key dedup only: the same headline syndicated under different URLs
	// is intentionally kept as two stories.
	items := []Item{
		{Title: "Ministry announces transit expansion", URL: "https://a.example/story"},
		{Title: "Ministry announces transit expansion", URL: "https://b.example/story"},
	}

	result := dedup.Run(items)

	if len(result) != 2 {
		t.Errorf("Different URLs must not collapse, got %d items", len(result))
	}
}

func TestDeduplicator_Run_PreservesOrder(t *testing.T) {
	dedup := NewDeduplicator()

	items := []Item{
		{Title: "First", URL: "https://e.example/1"},
		{Title: "Second", URL: "https://e.example/2"},
		{Title: "First", URL: "https://e.example/1"},
		{Title: "Third", URL: "https://e.example/3"},
	}

	result := dedup.Run(items)

	want := []string{"First", "Second", "Third"}
	if len(result) != len(want) {
		t.Fatalf("Expected %d items, got %d", len(want), len(result))
	}
	for i, title := range want {
		if result[i].Title != title {
			t.Errorf("Position %d: expected %q, got %q", i, title, result[i].Title)
		}
	}
}
