// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package policy decides when a question is public.

Every function takes the current instant explicitly; nothing in this package
reads the wall clock.

# Recency

	recent := policy.WasPublishedRecently(q, now)

A question is recently published when its pub_date lies in (now-24h, now].
The instant exactly 24 hours ago is excluded, and so is anything in the future.

# Visibility

A question is visible once pub_date <= now. Listing filters and orders:

	visible := policy.ListVisible(all, now) // newest first

Lookups by id treat future-dated questions as absent:

	q, err := policy.GetVisible(ctx, store, id, now)
	if errors.Is(err, policy.ErrNotFound) {
		// 404
	}
*/
package policy
