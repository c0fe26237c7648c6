// Package spec embeds the OpenAPI document describing the restkata API.
// The handler package serves it raw at /openapi.yaml and renders it through
// the Scalar viewer at /docs.
package spec

import _ "embed"

// OpenAPI is the raw openapi.yaml, embedded so the served document always
// matches the binary that serves it.
//
//go:embed openapi.yaml
var OpenAPI []byte
