// Package http serves a resolved configuration to browser clients.
//
// The endpoint is read-only: the configuration is resolved once at startup and
// every request sees the same immutable value, so handlers need no locking.
//
// # Routes
//
//   - GET /config.json: the merged document, with an ETag for conditional requests
//   - GET /config/{key}: a single top-level key, 404 when the key is absent
//   - GET /schema: the recognized keys with kind, merge strategy and rule
//   - GET /healthz: liveness check
//
// # Usage
//
//	cfg, err := provider.Resolve(sources...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handler := http.NewHandler(&http.HandlerConfig{
//	    Schema: provider.Schema(),
//	    CORS:   http.CORSConfig{Enabled: true, AllowedOrigins: []string{"https://desk.example.com"}},
//	}, cfg)
//	http.ListenAndServe(":5790", handler.Router())
//
// Errors are written as JSON bodies of the form {"error": code, "message": text}.
package http
