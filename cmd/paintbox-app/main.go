// Package main builds the editor as a Go plugin for the hotreload host:
//
//	go build -buildmode=plugin -ldflags=-pluginpath=paintbox-$(date +%s) \
//	    -o paintbox-app.so ./cmd/paintbox-app
//	go build -tags hotreload ./cmd/paintbox
//	./paintbox -plugin paintbox-app.so
//
// Every build needs a distinct -pluginpath. The runtime only accepts a new
// build while every package it shares with the host, including internal/app,
// is unchanged; edits below this package need a host restart.
package main

import (
	"unsafe"

	"github.com/Faultbox/paintbox/internal/app"
	"github.com/Faultbox/paintbox/internal/logger"
	"github.com/Faultbox/paintbox/internal/platform"
	"github.com/Faultbox/paintbox/internal/reload"
)

func Init(env *platform.Env) unsafe.Pointer {
	logger.Use(env.Log)
	return app.Init(env)
}

func PreReload() unsafe.Pointer {
	return app.PreReload()
}

func PostReload(state unsafe.Pointer, env *platform.Env) {
	logger.Use(env.Log)
	app.PostReload(state, env)
}

func Update(env *platform.Env) reload.Status {
	return app.Update(env)
}

func Shutdown() {
	app.Shutdown()
}

func main() {}
