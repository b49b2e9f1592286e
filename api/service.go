package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stefanreuther/c2ng-sub017/cache"
	db "github.com/stefanreuther/c2ng-sub017/db/sqlc"
	"github.com/stefanreuther/c2ng-sub017/render"
	"github.com/stefanreuther/c2ng-sub017/token"
	"github.com/stefanreuther/c2ng-sub017/util"
)

const (
	// api routes
	RenderURL  = "/render"
	CheckURL   = "/check"
	SmileysURL = "/smileys"
	PingURL    = "/ping"
)

type Service struct {
	config      util.Config
	store       db.Store
	tokenMaker  token.Maker
	cache       cache.Store
	highlighter render.Highlighter
	server      *http.Server
	router      *gin.Engine
}

// Returns new service instance with provided config and store.
// The render cache is optional; pass nil to render every request.
func NewService(
	config util.Config,
	store db.Store,
	tokenMaker token.Maker,
	renderCache cache.Store,
) (*Service, error) {
	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	service := &Service{
		config:      config,
		store:       store,
		tokenMaker:  tokenMaker,
		cache:       renderCache,
		highlighter: render.SimpleHighlighter{},
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.GET(SmileysURL, service.listSmileys)

	// the acting user only changes how links to the user render
	userGroup := router.Group("/").Use(optionalAuthMiddleware(service.tokenMaker))
	userGroup.POST(RenderURL, service.renderText)
	userGroup.POST(CheckURL, service.checkText)

	server.Handler = router
	service.router = router
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
