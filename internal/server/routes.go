package server

import "net/http"

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket route - map events (camera_fly_to, selection_changed, gyms_updated)
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// API routes - Gyms
	mux.HandleFunc("/api/gyms", s.app.GymsHandler.ListHandler)
	mux.HandleFunc("/api/gyms/refresh", s.app.GymsHandler.RefreshHandler)

	// API routes - Selection
	mux.HandleFunc("/api/selection", s.app.SelectionHandler.GetHandler)
	mux.HandleFunc("/api/selection/activate", s.app.SelectionHandler.ActivateHandler)
	mux.HandleFunc("/api/selection/clear", s.app.SelectionHandler.ClearHandler)
	mux.HandleFunc("/api/selection/sheet/toggle", s.app.SelectionHandler.SheetToggleHandler)
	mux.HandleFunc("/api/selection/sheet/drag", s.app.SelectionHandler.SheetDragHandler)

	// API routes - Scouting
	mux.HandleFunc("/api/scout", s.app.ScoutHandler.SubmitHandler)
	mux.HandleFunc("/api/scout/dismiss", s.app.ScoutHandler.DismissHandler)

	// API routes - Session
	mux.HandleFunc("/api/session", s.app.SessionHandler.Handler)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Catch-all for unknown API paths
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
