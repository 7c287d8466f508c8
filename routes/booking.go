package routes

import (
	"pawspa/handlers"
	"pawspa/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.FirebaseAuthMiddleware())
		bookingGroup.POST("/session", bh.StartSession)
		bookingGroup.GET("/session/:sessionID", bh.GetSession)
		bookingGroup.PUT("/session/:sessionID", bh.UpdateSession)
		bookingGroup.POST("/session/:sessionID/next", bh.NextStep)
		bookingGroup.POST("/session/:sessionID/previous", bh.PreviousStep)
		bookingGroup.GET("/session/:sessionID/quote", bh.Quote)
		bookingGroup.POST("/session/:sessionID/booking-fee/intent", bh.CreateBookingFeeIntent)
		bookingGroup.POST("/session/:sessionID/booking-fee", bh.RecordBookingFee)
		bookingGroup.POST("/confirm", bh.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", bh.CancelSession)
		bookingGroup.GET("/bookings", bh.ListBookings)
		bookingGroup.DELETE("/bookings/:bookingID", bh.CancelBooking)
	}
}
