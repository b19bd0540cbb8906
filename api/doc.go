// Package api provides the HTTP API layer for the Visual Summarizer service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for panels, saved points and settings
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Panel Lifecycle
//
// A browser shell posts the page it is showing and then forwards clicks:
//
//	POST   /panels                      {url, title, html} -> 201 {id, phase: "welcome", view}
//	POST   /panels/{id}/generate        -> {phase: "result" | "error", document, view}
//	POST   /panels/{id}/mode            {mode: "visual"}
//	POST   /panels/{id}/points/save     {text}
//	POST   /panels/{id}/points/expand   {text}
//	POST   /panels/{id}/summary/save
//	GET    /panels/{id}?format=html     current view plus rendered HTML
//	DELETE /panels/{id}
//
// Generation failures are part of the panel state (phase "error" with a
// message), not HTTP errors. A second generate while one is in flight
// returns 409.
//
// # Middleware
//
// The API includes middleware for:
// - Request logging with request IDs (X-Request-ID)
// - Token-bucket rate limiting per client IP
// - CORS handling for extension origins
//
// # Usage Example
//
//	humaAPI, router, limiter := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 5,
//	    RateBurst: 10,
//	})
//	handlers.NewPanelHandler(manager, fetcher, flags).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "panel not found: 3f2b..."
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
