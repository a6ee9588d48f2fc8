// Package view owns the transaction view state of a review session.
//
// Two sources feed the view: a paginated feed spanning all employees and a
// filter holding one employee's complete history. They are mutually
// exclusive. The Orchestrator is the only type the presentation layer talks
// to; it invalidates one source before activating the other and derives the
// displayed list by preferring the filter over the feed.
//
// Approval flags live in a separate in-memory overlay and are never written
// back to transactions or to any backend.
package view
