// Package api embeds the OpenAPI document for the HTTP surface.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 document served next to the swagger UI.
//
//go:embed openapi.json
var OpenAPI []byte
