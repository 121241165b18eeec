// Package canvas implements canvas lifecycle operations and the
// optimistic-concurrency block-editing protocol used by the canvas
// editors.
//
// Every item-level mutation is a read → pure transform → conditional
// write sequence. The write is a compare-and-swap on the block's
// monotonic version counter: a zero-row update means another writer got
// there first and the operation fails with types.ErrConflict. The caller
// re-fetches and retries; the core never retries on its own.
//
// The lock is block-grained, not item-grained: two concurrent edits to
// different items in the same block still race on the block version and
// one is rejected, even though the edits are logically independent. This
// is a known, accepted limitation. Edits to different blocks of the same
// canvas, or to different canvases, never interact.
package canvas
