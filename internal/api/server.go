package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sportsmate/sportsmate-api/docs"
	v1 "github.com/sportsmate/sportsmate-api/internal/api/handler/v1"
	"github.com/sportsmate/sportsmate-api/internal/api/middleware"
	"github.com/sportsmate/sportsmate-api/internal/config"
	"github.com/sportsmate/sportsmate-api/internal/repository"
	"github.com/sportsmate/sportsmate-api/internal/repository/dao"
	"github.com/sportsmate/sportsmate-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, gormDB *gorm.DB) *Server {
	if conf.API.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &Server{
		Config: conf,
		Router: gin.Default(),
	}

	srv.MountMiddlewares()
	srv.MountHandlers(gormDB)

	return srv
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(gormDB *gorm.DB) {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(gormDB))
	venueRepo := repository.NewVenueRepository(dao.NewVenueDAO(gormDB))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(gormDB))
	groupRepo := repository.NewGroupRepository(dao.NewGroupDAO(gormDB))
	commentRepo := repository.NewCommentRepository(dao.NewCommentDAO(gormDB))

	authHandler := v1.NewAuthHandler(s.Config.API, service.NewAuthService(userRepo))
	userHandler := v1.NewUserHandler(service.NewUserService(userRepo))
	venueHandler := v1.NewVenueHandler(service.NewVenueService(venueRepo))
	eventHandler := v1.NewEventHandler(service.NewEventService(eventRepo, venueRepo))
	groupHandler := v1.NewGroupHandler(service.NewGroupService(groupRepo, userRepo, eventRepo))
	commentHandler := v1.NewCommentHandler(service.NewCommentService(commentRepo, eventRepo))

	auth := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	apiV1 := s.Router.Group("/api/v1")
	{
		apiV1.POST("/auth/register", authHandler.HandleRegister)
		apiV1.POST("/auth/login", authHandler.HandleLogin)
		apiV1.POST("/admin/auth/login", authHandler.HandleAdminLogin)
	}

	authed := apiV1.Group("")
	authed.Use(auth.VerifyJWT())
	{
		authed.GET("/user/me", userHandler.HandleGetMe)
		authed.PUT("/user/me", userHandler.HandleUpdateMe)
		authed.DELETE("/user/me", userHandler.HandleDeleteMe)

		authed.GET("/venues", venueHandler.HandleListVenues)
		authed.GET("/venues/:venueID", venueHandler.HandleGetVenue)
		authed.POST("/venues", venueHandler.HandleCreateVenue)
		authed.PUT("/venues/:venueID", venueHandler.HandleUpdateVenue)
		authed.DELETE("/venues/:venueID", venueHandler.HandleDeleteVenue)

		authed.GET("/events", eventHandler.HandleListEvents)
		authed.GET("/events/:eventID", eventHandler.HandleGetEvent)
		authed.POST("/events", eventHandler.HandleCreateEvent)
		authed.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		authed.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		authed.GET("/events/:eventID/comments", commentHandler.HandleListComments)
		authed.POST("/events/:eventID/comments", commentHandler.HandleCreateComment)
		authed.DELETE("/events/:eventID/comments/:commentID", commentHandler.HandleDeleteComment)

		authed.POST("/groups", groupHandler.HandleCreateGroup)
		authed.GET("/groups/:groupID", groupHandler.HandleGetGroup)
		authed.POST("/groups/:groupID/join", groupHandler.HandleToggleMembership)
	}

	admin := apiV1.Group("/admin")
	admin.Use(auth.VerifyJWT(), middleware.RequireAdmin())
	{
		admin.GET("/users", userHandler.HandleListUsers)
		admin.POST("/users", userHandler.HandleCreateUser)
		admin.GET("/users/:userID", userHandler.HandleGetUser)
		admin.PUT("/users/:userID", userHandler.HandleUpdateUser)
		admin.DELETE("/users/:userID", userHandler.HandleDeleteUser)

		admin.GET("/venues", venueHandler.HandleListVenues)
		admin.POST("/venues", venueHandler.HandleCreateVenue)
		admin.GET("/venues/:venueID", venueHandler.HandleGetVenue)
		admin.PUT("/venues/:venueID", venueHandler.HandleUpdateVenue)
		admin.DELETE("/venues/:venueID", venueHandler.HandleDeleteVenue)

		admin.GET("/events", eventHandler.HandleListEvents)
		admin.POST("/events", eventHandler.HandleCreateEvent)
		admin.GET("/events/:eventID", eventHandler.HandleGetEvent)
		admin.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		admin.DELETE("/events/:eventID", eventHandler.HandleDeleteEvent)

		admin.GET("/groups", groupHandler.HandleListGroups)
		admin.POST("/groups", groupHandler.HandleCreateGroup)
		admin.GET("/groups/:groupID", groupHandler.HandleGetGroup)
		admin.PUT("/groups/:groupID", groupHandler.HandleUpdateGroup)
		admin.DELETE("/groups/:groupID", groupHandler.HandleDeleteGroup)

		admin.GET("/groups/:groupID/members", groupHandler.HandleListMembers)
		admin.POST("/groups/:groupID/members", groupHandler.HandleAddMember)
		admin.DELETE("/groups/:groupID/members/:userID", groupHandler.HandleRemoveMember)
	}

	docs.SwaggerInfo.BasePath = "/api/v1"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
