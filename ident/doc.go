// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates identifiers and digests.

# Media IDs

Stored attachments are keyed by random UUIDs:

	id := ident.NewMediaID()

# Content Digests

Attachments record the SHA-256 of their bytes:

	digest := ident.ContentDigest(data)

# Client IDs

Live dashboard connections get their own UUID for log correlation:

	id := ident.NewClientID()
*/
package ident
