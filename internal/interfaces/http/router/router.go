package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegistrarFunc adapts a function to the RouteRegistrar interface
type RegistrarFunc func(rg *gin.RouterGroup)

// RegisterRoutes implements RouteRegistrar
func (f RegistrarFunc) RegisterRoutes(rg *gin.RouterGroup) {
	f(rg)
}

// Router wires handlers onto the /api group. The storefront contract has no
// version segment, so everything hangs directly off /api.
type Router struct {
	engine     *gin.Engine
	public     []RouteRegistrar
	protected  []RouteRegistrar
	middleware []gin.HandlerFunc
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine) *Router {
	return &Router{engine: engine}
}

// Public adds registrars reachable without authentication
func (r *Router) Public(registrars ...RouteRegistrar) *Router {
	r.public = append(r.public, registrars...)
	return r
}

// Protected adds registrars behind the admin auth middleware
func (r *Router) Protected(registrars ...RouteRegistrar) *Router {
	r.protected = append(r.protected, registrars...)
	return r
}

// WithAuthMiddleware sets the middleware guarding protected registrars
func (r *Router) WithAuthMiddleware(mw ...gin.HandlerFunc) *Router {
	r.middleware = append(r.middleware, mw...)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api")

	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	admin := r.engine.Group("/api")
	admin.Use(r.middleware...)
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(admin)
	}
}
