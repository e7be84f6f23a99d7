// Package config provides configuration loading, merging, and validation
// facilities for the lineage sync client and the remote document server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the sync client and
// [GetServerConfig] for the document server.
package config
