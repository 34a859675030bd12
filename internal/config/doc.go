// Package config provides configuration loading, merging, and validation
// for the QR history client binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults (180x180 medium-recovery QR codes, a 2s render wait window, 15s
// upload timeout) are filled in afterwards. The entry point for binaries is
// [GetClientConfig].
package config
