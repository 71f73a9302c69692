// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/gorilla/mux"
)

var ErrDuplicateRoute = errors.New("duplicate route")

type router struct {
	lock   sync.RWMutex
	router *mux.Router

	routes map[string]set.Set[string] // base -> endpoints
}

func newRouter() *router {
	return &router{
		router: mux.NewRouter(),
		routes: make(map[string]set.Set[string]),
	}
}

func (r *router) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	r.router.ServeHTTP(writer, request)
}

func (r *router) AddRouter(base, endpoint string, handler http.Handler) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	endpoints, ok := r.routes[base]
	if !ok {
		endpoints = set.NewSet[string](1)
		r.routes[base] = endpoints
	}
	if endpoints.Contains(endpoint) {
		return fmt.Errorf("%w: %s%s", ErrDuplicateRoute, base, endpoint)
	}
	endpoints.Add(endpoint)
	r.router.Handle(base+endpoint, handler)
	return nil
}
