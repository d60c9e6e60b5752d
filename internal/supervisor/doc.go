// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

/*
Package supervisor provides process supervision for CineSence using suture v4.

# Overview

Services are organized into two layers for failure isolation:

	RootSupervisor ("cinesence")
	├── IndexSupervisor ("index-layer")
	│   └── IndexService (one-shot similarity index build)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The API layer starts serving immediately. Liveness succeeds at once and
readiness reports 503 until the index layer has published the catalog index.
A failed index build is retried with suture's backoff; a successful one
returns suture.ErrDoNotRestart and is not run again.

# Usage Example

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddIndexService(services.NewIndexService(build, handler.SetIndex, logging.Logger()))
	httpService := services.NewHTTPServerService(server, 10*time.Second, logging.WithComponent("http"))
	if err := httpService.Listen(); err != nil {
	    return err
	}
	tree.AddAPIService(httpService)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

Supervisor events (start, failure, backoff, restart) are logged through
sutureslog into the slog adapter of the logging package, so they land in the
same zerolog stream as the rest of the service.
*/
package supervisor
