// Package spec embeds the OpenAPI specification for the travel API.
// It is served at /openapi.yaml so the contract and the running code
// always ship together.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
