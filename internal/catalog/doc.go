// Package catalog holds the product data model and the browse pipeline.
//
// # Overview
//
// The catalog is the sole data source for the storefront. It is loaded
// once at startup, either from the built-in fixture or from a TOML file
// named in the configuration, and is read-only for the rest of the
// session. Everything the UI shows is derived from it.
//
// # Core Types
//
//   - Product: one immutable purchasable record
//   - Catalog: the full product list with lookup and grouping accessors
//   - Query: the complete set of browse inputs (category, search text,
//     price range, minimum rating, sort key)
//
// # The Filter Pipeline
//
// Filter is a pure function from (products, Query) to an ordered
// product list:
//
//  1. Keep the selected category (or everything for "All")
//  2. Keep name/category substring matches for the search term
//  3. Keep products inside the price range
//  4. Keep products at or above the minimum rating
//  5. Sort by the selected key with a stable sort
//
// Because the sort is stable, products that compare equal under the
// chosen key keep their fixture order, which makes the output fully
// deterministic and directly testable. The UI calls Filter on every
// input change rather than caching derived state.
//
// # Suggestions
//
// Suggest powers the search box type-ahead: the same substring match as
// the pipeline's search step, capped to a fixed number of results.
package catalog
