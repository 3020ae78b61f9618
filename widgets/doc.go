// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (boxes, stacks, the gallery frame painter, popup overlay compositor)
//
// Not allowed here:
// - key handling, navigation state, settings persistence, or query logic
package widgets
