package server

import (
	"plate-auction/internal/auth"
	bids "plate-auction/internal/bidService"
	"plate-auction/internal/hub"
	plates "plate-auction/internal/plateService"
	handler "plate-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(authService *auth.AuthService, plateService *plates.PlateService, bidService *bids.BidService, liveHub *hub.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	userHandler := handler.NewUserHandler(authService)
	plateHandler := handler.NewPlateHandler(plateService)
	bidHandler := handler.NewBidHandler(bidService)
	wsHandler := handler.NewWSHandler(liveHub, authService)

	router.POST("/users", userHandler.RegisterHandler)
	router.POST("/auth/login", userHandler.LoginHandler)

	authed := AuthRequired(authService)

	platesGroup := router.Group("/plates")
	{
		platesGroup.GET("", plateHandler.ListPlatesHandler)
		platesGroup.GET("/:plate_id", plateHandler.GetPlateDetailHandler)
		platesGroup.POST("", authed, StaffOnly, plateHandler.CreatePlateHandler)
		platesGroup.PUT("/:plate_id", authed, StaffOnly, plateHandler.UpdatePlateHandler)
		platesGroup.DELETE("/:plate_id", authed, StaffOnly, plateHandler.DeletePlateHandler)
	}

	bidsGroup := router.Group("/bids", authed, NonStaffOnly)
	{
		bidsGroup.GET("", bidHandler.ListUserBidsHandler)
		bidsGroup.POST("", bidHandler.PlaceBidHandler)
		bidsGroup.GET("/:bid_id", bidHandler.GetBidHandler)
		bidsGroup.PUT("/:bid_id", bidHandler.ReviseBidHandler)
		bidsGroup.DELETE("/:bid_id", bidHandler.WithdrawBidHandler)
	}

	ws := router.Group("/ws")
	{
		ws.GET("/plates", wsHandler.SubscribePlatesHandler)
		ws.GET("/bids", wsHandler.SubscribeBidsHandler)
	}

	return router
}
