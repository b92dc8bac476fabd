// Package http exposes the REST API: registration, login, messages, rooms
// and image upload/retrieval.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/DevBazho/realtime-chat-app/internal/logging"
	"github.com/DevBazho/realtime-chat-app/internal/server/services"
)

// uploadBodyLimit caps multipart upload requests.
const uploadBodyLimit = "5M"

type Server struct {
	echo   *echo.Echo
	addr   string
	logger logging.Logger
}

// customValidator plugs go-playground/validator into echo's Validate hook.
type customValidator struct {
	validator *validator.Validate
}

func (cv *customValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// jsonSerializer swaps echo's JSON codec for goccy/go-json.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// NewServer wires the echo instance: serializer, validator, logging
// middleware, and every route, with the token gate on all groups except
// register/login.
func NewServer(addr string, l logging.Logger, us *services.UserService, ms *services.MessageService, rs *services.RoomService, secretKey string) *Server {

	logger := l.With("module", "http_server")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Validator = &customValidator{validator: validator.New()}

	// a hung downstream must not pin connections forever
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 60 * time.Second

	e.Use(RequestLogger(logger))

	h := &Handler{users: us, messages: ms, rooms: rs, logger: logger}
	gate := RequireAuth([]byte(secretKey), logger)

	ug := e.Group("/api/user")
	ug.POST("/register", h.Register)
	ug.POST("/login", h.Login)

	mg := e.Group("/messages", gate)
	mg.GET("", h.ListMessages)
	mg.POST("/by-email", h.MessagesByEmail)
	mg.POST("/send", h.SendMessage)
	mg.GET("/users", h.ListUserNames)
	mg.POST("/upload", h.UploadMessageImage, echomw.BodyLimit(uploadBodyLimit))
	mg.GET("/images/:image", h.MessageImageURL)

	usg := e.Group("/users", gate)
	usg.GET("/all", h.ListUsers)
	usg.DELETE("/delete/:id", h.DeleteUser)
	usg.PUT("/update-name/:id", h.UpdateUserName)
	usg.PUT("/update-password/:id", h.UpdateUserPassword)
	usg.PUT("/update-email/:id", h.UpdateUserEmail)
	usg.PUT("/update-image/:id", h.UpdateUserImage, echomw.BodyLimit(uploadBodyLimit))
	usg.GET("/images/:image", h.UserImageURL)

	rg := e.Group("/rooms", gate)
	rg.GET("/all", h.ListRooms)
	rg.POST("/create-room", h.CreateRoom)

	return &Server{echo: e, addr: addr, logger: logger}
}

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
