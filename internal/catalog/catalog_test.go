package catalog

import "testing"

func TestCatalog_Accessors(t *testing.T) {
	c := New(testProducts())

	if c.Len() != 4 {
		t.Fatalf("Len = %d, want 4", c.Len())
	}

	p, ok := c.ByID("c")
	if !ok || p.Name != "Bookshelf Speakers" {
		t.Fatalf("ByID(c) = %+v ok=%v, want Bookshelf Speakers", p, ok)
	}
	if _, ok := c.ByID("missing"); ok {
		t.Fatal("ByID(missing) reported a product")
	}

	cats := c.Categories()
	if len(cats) != 2 || cats[0] != "Audio" || cats[1] != "Gaming" {
		t.Fatalf("Categories = %v, want [Audio Gaming] in first-seen order", cats)
	}

	if n := c.CountByCategory("Audio"); n != 2 {
		t.Fatalf("CountByCategory(Audio) = %d, want 2", n)
	}
	if n := c.CountByCategory("Unknown"); n != 0 {
		t.Fatalf("CountByCategory(Unknown) = %d, want 0", n)
	}

	if got := ids(c.Featured()); !equalIDs(got, []string{"c"}) {
		t.Fatalf("Featured = %v, want [c]", got)
	}
	if got := ids(c.NewArrivals()); !equalIDs(got, []string{"b"}) {
		t.Fatalf("NewArrivals = %v, want [b]", got)
	}
}

func TestCatalog_Related(t *testing.T) {
	c := New(testProducts())

	audio, _ := c.ByID("a")
	got := ids(c.Related(audio, 4))
	if !equalIDs(got, []string{"c"}) {
		t.Fatalf("Related(a) = %v, want [c]", got)
	}

	gaming, _ := c.ByID("b")
	if got := ids(c.Related(gaming, 0)); got != nil {
		t.Fatalf("Related limit 0 = %v, want nil", got)
	}
	if got := ids(c.Related(gaming, 1)); !equalIDs(got, []string{"d"}) {
		t.Fatalf("Related(b, 1) = %v, want [d]", got)
	}
}

func TestCatalog_ProductsIsACopy(t *testing.T) {
	c := New(testProducts())
	out := c.Products()
	out[0].Name = "mutated"

	fresh := c.Products()
	if fresh[0].Name == "mutated" {
		t.Fatal("Products should return an independent copy")
	}
}

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name string
		p    Product
		want int
	}{
		{"no_original_price", Product{Price: 100}, 0},
		{"original_below_price", Product{Price: 100, OriginalPrice: 80}, 0},
		{"quarter_off", Product{Price: 299, OriginalPrice: 399}, 25},
		{"rounded", Product{Price: 199, OriginalPrice: 249}, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DiscountPercent(tc.p); got != tc.want {
				t.Fatalf("DiscountPercent = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBuiltin(t *testing.T) {
	c := Builtin()
	if c.Len() != 30 {
		t.Fatalf("builtin catalog has %d products, want 30", c.Len())
	}

	cats := c.Categories()
	want := []string{"Audio", "Gaming", "Mobile", "Wearable", "Computer", "Smart Home"}
	if !equalIDs(cats, want) {
		t.Fatalf("builtin categories = %v, want %v", cats, want)
	}

	seen := map[string]bool{}
	for _, p := range c.Products() {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %q in builtin catalog", p.ID)
		}
		seen[p.ID] = true
		if p.Price < 0 || p.Rating < 0 || p.Rating > 5 || p.Reviews < 0 {
			t.Fatalf("product %q has out-of-range fields: %+v", p.ID, p)
		}
	}
}
