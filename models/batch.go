// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BatchOpType is the kind of write carried by a batch operation.
type BatchOpType string

const (
	BatchSet    BatchOpType = "set"
	BatchUpdate BatchOpType = "update"
	BatchDelete BatchOpType = "delete"
)

// BatchOp is one staged remote write.
type BatchOp struct {
	Op      BatchOpType `json:"op"`
	Kind    Kind        `json:"kind"`
	ID      int64       `json:"id"`
	Payload Payload     `json:"payload,omitempty"`
}

// BatchRequest is the body of the remote batch commit endpoint.
type BatchRequest struct {
	Ops    []BatchOp `json:"ops"`
	Length int       `json:"length"`
}

// ExistsResponse answers the remote existence probe.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
