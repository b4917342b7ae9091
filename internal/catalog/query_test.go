package catalog

import "testing"

func testProducts() []Product {
	return []Product{
		{ID: "a", Name: "Quantum Headphones", Price: 100, Rating: 4.8, Category: "Audio"},
		{ID: "b", Name: "VR Headset", Price: 200, Rating: 4.5, Category: "Gaming", IsNew: true},
		{ID: "c", Name: "Bookshelf Speakers", Price: 150, Rating: 4.5, Category: "Audio", IsFeatured: true},
		{ID: "d", Name: "Gaming Mouse", Price: 50, Rating: 4.8, Category: "Gaming"},
	}
}

func ids(products []Product) []string {
	var out []string
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	cases := []struct {
		name string
		q    Query
		want []string
	}{
		{"zero_query_sorts_by_name", Query{}, []string{"c", "d", "a", "b"}},
		{"all_category", Query{Category: AllCategories}, []string{"c", "d", "a", "b"}},
		{"category_audio", Query{Category: "Audio"}, []string{"c", "a"}},
		{"search_matches_name", Query{Search: "headphones"}, []string{"a"}},
		{"search_matches_category", Query{Search: "audio"}, []string{"c", "a"}},
		{"search_case_insensitive", Query{Search: "AUDIO"}, []string{"c", "a"}},
		{"search_trims_whitespace", Query{Search: "  gaming  "}, []string{"d", "b"}},
		{"price_range", Query{MinPrice: 0, MaxPrice: 150}, []string{"c", "d", "a"}},
		{"price_range_narrow", Query{MinPrice: 120, MaxPrice: 180}, []string{"c"}},
		{"max_price_zero_means_unbounded", Query{MinPrice: 150}, []string{"c", "b"}},
		{"min_rating", Query{MinRating: 4.6}, []string{"d", "a"}},
		{"sort_price_low", Query{Sort: SortPriceLow}, []string{"d", "a", "c", "b"}},
		{"sort_price_high", Query{Sort: SortPriceHigh}, []string{"b", "c", "a", "d"}},
		{"sort_newest_flag_first", Query{Sort: SortNewest}, []string{"b", "a", "c", "d"}},
		{"sort_featured_flag_first", Query{Sort: SortFeatured}, []string{"c", "a", "b", "d"}},
		{"combined", Query{Category: "Gaming", MaxPrice: 100}, []string{"d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(testProducts(), tc.q))
			if !equalIDs(got, tc.want) {
				t.Fatalf("Filter(%+v) = %v, want %v", tc.q, got, tc.want)
			}
		})
	}
}

func TestFilter_RatingSortIsStable(t *testing.T) {
	// a and d share a rating, as do b and c; input order must survive.
	got := ids(Filter(testProducts(), Query{Sort: SortRating}))
	want := []string{"a", "d", "b", "c"}
	if !equalIDs(got, want) {
		t.Fatalf("Filter(rating) = %v, want %v", got, want)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := testProducts()
	Filter(in, Query{Sort: SortPriceHigh})
	if in[0].ID != "a" || in[3].ID != "d" {
		t.Fatalf("input order changed: %v", ids(in))
	}
}

func TestFilter_PriceRangeScenario(t *testing.T) {
	pair := []Product{
		{ID: "A", Name: "Alpha", Price: 100, Rating: 4.8, Category: "Audio"},
		{ID: "B", Name: "Beta", Price: 200, Rating: 4.5, Category: "Gaming"},
	}

	got := ids(Filter(pair, Query{MinPrice: 0, MaxPrice: 150}))
	if !equalIDs(got, []string{"A"}) {
		t.Fatalf("price [0,150] = %v, want [A]", got)
	}

	got = ids(Filter(pair, Query{Sort: SortPriceHigh}))
	if !equalIDs(got, []string{"B", "A"}) {
		t.Fatalf("price-high = %v, want [B A]", got)
	}

	got = ids(Filter(pair, Query{Search: "audio"}))
	if !equalIDs(got, []string{"A"}) {
		t.Fatalf("search audio = %v, want [A]", got)
	}
}

func TestSuggest(t *testing.T) {
	products := testProducts()

	got := Suggest(products, "head", 5)
	if !equalIDs(ids(got), []string{"a", "b"}) {
		t.Fatalf("Suggest(head) = %v, want [a b]", ids(got))
	}

	// Cap applies in catalog order.
	got = Suggest(products, "a", 2)
	if len(got) != 2 {
		t.Fatalf("Suggest cap = %d results, want 2", len(got))
	}

	if got := Suggest(products, "", 5); got != nil {
		t.Fatalf("Suggest(empty) = %v, want nil", ids(got))
	}
	if got := Suggest(products, "head", 0); got != nil {
		t.Fatalf("Suggest(limit 0) = %v, want nil", ids(got))
	}
	if got := Suggest(products, "zzz", 5); got != nil {
		t.Fatalf("Suggest(no match) = %v, want nil", ids(got))
	}
}

func TestSortCycle(t *testing.T) {
	s := SortName
	seen := map[Sort]bool{}
	for i := 0; i < 6; i++ {
		if seen[s] {
			t.Fatalf("sort %v repeated before cycle completed", s)
		}
		seen[s] = true
		s = s.Next()
	}
	if s != SortName {
		t.Fatalf("cycle ended at %v, want SortName", s)
	}
}
