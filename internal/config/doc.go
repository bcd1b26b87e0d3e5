// Package config provides configuration loading, merging, and validation
// facilities for the Academy client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources only fill fields the earlier ones left unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which loads the merged
// [StructuredConfig], applies defaults, and returns a validated client view.
package config
