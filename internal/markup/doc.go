// Package markup holds the two leaf helpers the page renderer builds on: an
// HTML escaper for untrusted manifest text and the small outline icon set
// used by cards, buttons and section headers.
//
// Icons are available both as markup text (Icon) for templates and as
// detached DOM nodes (IconNode) for the node-based renderer in package page.
package markup
