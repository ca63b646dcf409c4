// Package ui implements the terminal interface with Bubble Tea.
//
// # Views
//
// The interface has three views. Products lists the full catalog with an
// optional substring filter over title and category. Detail shows one
// product with its rating and description in a scrollable viewport.
// Wishlist lists saved products straight from the store.
//
// # Data flow
//
// Catalog requests run as Bubble Tea commands and deliver productsMsg,
// productMsg, or fetchErrMsg back into Update. Every navigation bumps a
// generation counter that is stamped onto outgoing commands; a reply whose
// generation no longer matches is dropped, so a slow fetch can never
// clobber the view the user navigated to afterwards. Views are re-fetched
// on every visit, nothing is cached.
//
// # Wishlist hydration
//
// The store is constructed empty and hydrated in the background from Run.
// Until the store reports hydrated, membership indicators, the header
// count, and the wishlist view all render the not-loaded state; the first
// storeChangedMsg after hydration flips them at once. Store mutations from
// any view also arrive as storeChangedMsg via the subscription Run sets
// up, keeping all views in sync without polling.
package ui
