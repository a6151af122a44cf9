// Package models defines the core domain models for the Tal3a engine.
//
// # Entities
//
//   - Event: a scheduled small-group sports meetup (a "Tal3a"), the root entity
//   - Membership: one principal's enrollment in an event
//   - Review: post-event feedback left by a participant or the organizer
//   - Comment: threaded discussion attached to an event
//   - Group: read-only descriptive data owned by the social collaborator
//
// Principals are opaque identities handed to us by the identity collaborator.
// Relationships between entities use numeric IDs instead of pointers, and every
// entity is persisted as its own record in the durable map store.
//
// # State machines
//
// Event.Status moves Active <-> Full as capacity fills and frees up, and
// Active/Full -> Completed | Cancelled on explicit organizer request. Completed
// and Cancelled are terminal.
//
// Membership.Status (Going, Maybe, CantGo) is set by the organizer and never
// touches the capacity counter.
package models
