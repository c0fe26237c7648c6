package handler

import (
	"net/http"

	"github.com/restkata/restkata/spec"
)

// docsHTML is the minimal shell that loads the Scalar API reference UI and
// points it at the OpenAPI document served by this process.
const docsHTML = `<!doctype html>
<html>
  <head>
    <title>restkata API reference</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="/openapi.yaml"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>
`

// openapiSpec handles GET /openapi.yaml, serving the embedded API contract.
func (s *Server) openapiSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// docs handles GET /docs, serving the interactive API reference.
func (s *Server) docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docsHTML))
}
