// Package ui provides the terminal user interface for the TechStore
// storefront.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea's Model-Update-View loop. A single Model
// struct holds all interface state; every keystroke and timer produces a
// message, Update returns the next Model, and View renders it. Domain
// state lives outside the package in the cart, wishlist, and auth stores,
// which the Model dispatches commands to.
//
// # View Types
//
// Four main views are available:
//
//   - Browse: Filterable product table with a detail pane for the
//     highlighted product, its badges, rating, features, and related items
//   - Cart: Line items with quantity steppers and an order summary
//     (subtotal, free shipping, tax, total)
//   - Wishlist: Saved products with move-to-cart
//   - Account: Login/register form when signed out, profile when signed in
//
// # Browse Filters
//
// Category, search term, price band, and minimum rating combine into a
// catalog.Query; the visible list is recomputed through catalog.Filter on
// every change, so filtering is always live. The search bar offers
// suggestions while typing and trending terms when empty.
//
// # Guest Gate
//
// Adding to the cart or wishlist requires a signed-in session. When a
// guest tries, a blocking notice explains why and offers a shortcut to
// the account view. Adds are committed after a short simulated delay with
// a spinner on the affected row.
//
// # Theming
//
// Three color themes (Slate, Dracula, Nord) are cycled with T and
// persisted through the prefs package. All rendering goes through
// Theme.Styles and the BgStyle helper so backgrounds stay continuous
// across styled segments.
package ui
