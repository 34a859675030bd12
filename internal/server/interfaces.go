package server

// Server is the browser preview front end. RunServer blocks until SIGINT,
// SIGTERM or SIGQUIT and then shuts down; Shutdown stops it from elsewhere.
type Server interface {
	RunServer()
	Shutdown()
}
