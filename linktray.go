// Package linktray provides session-scoped link capture from a running
// browser. It extracts a canonical {title, url} pair from heterogeneous page
// contexts (a right-clicked link, selected URL text, a hovered anchor),
// deduplicates captures into an ordered session list, and formats the list
// for copying as plain text or markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/).
package linktray
