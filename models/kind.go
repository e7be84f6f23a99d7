// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Kind names one synchronized entity collection. The string value doubles as
// the local table name and the remote collection name.
type Kind string

const (
	Houses         Kind = "houses"
	Persons        Kind = "persons"
	Relationships  Kind = "relationships"
	CodexEntries   Kind = "codex_entries"
	Heraldry       Kind = "heraldry"
	HeraldryLinks  Kind = "heraldry_links"
	Dignities      Kind = "dignities"
	DignityTenures Kind = "dignity_tenures"
	DignityLinks   Kind = "dignity_links"
	HouseholdRoles Kind = "household_roles"
)

// SyncOrder lists every synchronized kind in dependency order: a kind never
// references a kind that appears after it. Bulk write-back follows this order.
var SyncOrder = []Kind{
	Houses,
	Persons,
	Relationships,
	CodexEntries,
	Heraldry,
	HeraldryLinks,
	Dignities,
	DignityTenures,
	DignityLinks,
	HouseholdRoles,
}

// AnchorKinds are read during bootstrap classification to decide whether the
// local store holds any data at all.
var AnchorKinds = []Kind{Persons, Houses, Relationships}

// KindSpec is one manifest entry. Optional kinds are gathered with a scoped
// fallible read that degrades to an empty collection on failure.
type KindSpec struct {
	Kind     Kind
	Optional bool
}

// Manifest is the gather-for-upload manifest in dependency order.
var Manifest = []KindSpec{
	{Kind: Houses},
	{Kind: Persons},
	{Kind: Relationships},
	{Kind: CodexEntries, Optional: true},
	{Kind: Heraldry, Optional: true},
	{Kind: HeraldryLinks, Optional: true},
	{Kind: Dignities, Optional: true},
	{Kind: DignityTenures, Optional: true},
	{Kind: DignityLinks, Optional: true},
	{Kind: HouseholdRoles, Optional: true},
}

// Valid reports whether k is one of the synchronized kinds.
func (k Kind) Valid() bool {
	for _, known := range SyncOrder {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a collection name into a Kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	return k, k.Valid()
}
