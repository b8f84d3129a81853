package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

// Route descreve uma rota HTTP com seus middlewares próprios,
// aplicados depois da cadeia global do servidor
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas na construção do router
var WithRoutes = func(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

type Router struct {
	router *httprouter.Router
}

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas, encadeando os middlewares de cada uma via alice
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		constructors := make([]alice.Constructor, 0, len(route.Middlewares))
		for _, mw := range route.Middlewares {
			constructors = append(constructors, alice.Constructor(mw))
		}

		r.router.Handler(route.Method, route.Path, alice.New(constructors...).Then(route.Handler))
	}
}
