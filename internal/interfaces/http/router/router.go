package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar is anything that can mount its routes under the API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router collects resource groups and mounts them under /api/<version>
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

type RouterOption func(*Router)

// WithAPIVersion replaces the default "v1" path segment
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) { r.apiVersion = version }
}

func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine, apiVersion: "v1"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup mounts every registered group; call it once after Register
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	for _, reg := range r.registrars {
		reg.RegisterRoutes(api)
	}
}

type endpoint struct {
	method, path string
	chain        []gin.HandlerFunc
}

// DomainGroup is the route table of one resource. Middleware added with Use
// runs before every endpoint in the group regardless of call order.
type DomainGroup struct {
	name, prefix string
	before       []gin.HandlerFunc
	endpoints    []endpoint
}

func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

func (g *DomainGroup) Name() string   { return g.name }
func (g *DomainGroup) Prefix() string { return g.prefix }

func (g *DomainGroup) Use(mw ...gin.HandlerFunc) *DomainGroup {
	g.before = append(g.before, mw...)
	return g
}

func (g *DomainGroup) Handle(method, path string, chain ...gin.HandlerFunc) *DomainGroup {
	g.endpoints = append(g.endpoints, endpoint{method: method, path: path, chain: chain})
	return g
}

func (g *DomainGroup) GET(path string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodGet, path, h...)
}

func (g *DomainGroup) POST(path string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodPost, path, h...)
}

func (g *DomainGroup) PUT(path string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodPut, path, h...)
}

func (g *DomainGroup) PATCH(path string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodPatch, path, h...)
}

func (g *DomainGroup) DELETE(path string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodDelete, path, h...)
}

func (g *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	sub := rg.Group(g.prefix, g.before...)
	for _, e := range g.endpoints {
		sub.Handle(e.method, e.path, e.chain...)
	}
}
