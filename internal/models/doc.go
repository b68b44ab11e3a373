// Package models defines the caller-facing domain objects produced and enriched by the info system.
//
// The package contains two categories of types:
//
// 1. Media entities built from remote catalog data:
//   - [Artist] : artist with image, albums and ranked top hits
//   - [Album] : album with image, release date and track listing
//   - [Track] : a single recording, denormalized with artist and album names
//   - [Image] : a sized image reference
//   - [User] : a profile with now-playing state, counters and social feeds
//   - [Playlist] : a playlist and its entries
//   - [SocialAction] : an activity entry (love, follow, comment, latch)
//
// [Artist], [Album] and [User] are fill targets: callers construct them up front and the info system merges remote
// data into them in place. Their fields are guarded so a worker may write while the caller reads.
//
// 2. Persistent records:
//   - [OutcomeRecord] : one row of the request outcome log
//
// Persistent records implement the [Model] interface and are stored through a [Repository].
package models
