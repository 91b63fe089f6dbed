// Package menu maintains a local replica of a menu tree owned by a remote
// process and keeps it consistent as the remote structure changes.
//
// The Client is the synchronization engine: it gates layout fetches on
// server revision numbers, coalesces per-node property fetches into batched
// round trips, and reconciles freshly fetched layouts against the live tree
// while preserving node identity. Consumers register an Observer to learn
// about structural changes and forward user interaction through SendEvent
// and SendAboutToShow.
//
// All engine state is mutated on a single serial run loop. Observer
// callbacks are delivered on that loop; node references handed to observers
// are safe to traverse from within a callback or after Close, and must never
// be mutated by the consumer.
package menu
