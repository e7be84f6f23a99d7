// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It wires the local store, the remote adapter, the sync engine, the
// connectivity workers and the status UI into a single process lifecycle.
package client
