// Package catalog contains the static tables behind the welcome dashboard.
//
// # Service Metadata
//
// Resolve maps a manifest service key (for example "n8n" or "open-webui") to
// its display metadata: name, one-line description, badge glyph, Tailwind
// accent class and documentation link. Keys the table does not know still
// resolve: the name is the key itself, the glyph is its first two characters
// upper-cased and the accent is NeutralColor.
//
// # Extra Fields
//
// Extra describes the auxiliary per-instance fields a card knows how to show.
// Each recognized key has a label and a kind (copyable value, external link,
// secret, or internal address). Unrecognized keys are not rendered, with the
// single exception of RecommendationKey.
//
// # Static Content
//
// Commands is the make-target cheat-sheet and DefaultQuickStart the four
// steps shown when a manifest has no quick_start list or cannot be loaded.
//
// All accessors return copies; the package holds no mutable state.
package catalog
