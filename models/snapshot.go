// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KindRecords pairs a kind with its records.
type KindRecords struct {
	Kind    Kind     `json:"kind"`
	Records []Record `json:"records"`
}

// Snapshot is an ordered list of per-kind record sets, as gathered for upload
// or returned by a bulk download.
type Snapshot []KindRecords

// Records returns the records of kind k, or nil if the snapshot has none.
func (s Snapshot) Records(k Kind) []Record {
	for _, kr := range s {
		if kr.Kind == k {
			return kr.Records
		}
	}
	return nil
}

// Count returns the total number of records across all kinds.
func (s Snapshot) Count() int {
	n := 0
	for _, kr := range s {
		n += len(kr.Records)
	}
	return n
}

// Counts returns the number of records per kind.
func (s Snapshot) Counts() map[Kind]int {
	out := make(map[Kind]int, len(s))
	for _, kr := range s {
		out[kr.Kind] += len(kr.Records)
	}
	return out
}
