// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lending/internal/delivery/api/middleware"
	"lending/internal/delivery/api/router/handler"
	"lending/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	BookHandler    *handler.BookHandler
	LoanHandler    *handler.LoanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	bookHandler    *handler.BookHandler
	loanHandler    *handler.LoanHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		bookHandler:    params.BookHandler,
		loanHandler:    params.LoanHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	users := e.Group("/users")
	{
		users.POST("/signup", r.userHandler.Signup)
		users.POST("/login", r.userHandler.Login)
		users.POST("/forgot-password", r.userHandler.ForgotPassword)
		users.PATCH("/reset-password/:token", r.userHandler.ResetPassword)
		users.PATCH("/reactivate", r.userHandler.Reactivate)

		users.PATCH("/logout", r.userHandler.Logout, authenticate)
		users.GET("/me", r.profileHandler.GetMe, authenticate)
		users.PATCH("/me", r.profileHandler.UpdateMe, authenticate)
		users.DELETE("/me", r.profileHandler.DeactivateMe, authenticate)
		users.PATCH("/me/password", r.userHandler.ChangePassword, authenticate)

		users.GET("", r.profileHandler.ListUsers, authenticate, adminOnly)
		users.GET("/:id", r.profileHandler.GetUser, authenticate, adminOnly)
		users.DELETE("/:id", r.profileHandler.DeactivateUser, authenticate, adminOnly)
	}

	books := e.Group("/books")
	{
		books.GET("", r.bookHandler.ListBooks)
		books.GET("/:id", r.bookHandler.GetBook)

		books.POST("", r.bookHandler.CreateBook, authenticate, adminOnly)
		books.PATCH("/:id", r.bookHandler.UpdateBook, authenticate, adminOnly)
		books.DELETE("/:id", r.bookHandler.DeleteBook, authenticate, adminOnly)
		books.PATCH("/:id/stock", r.bookHandler.AdjustStock, authenticate, adminOnly)
	}

	// Every loan route needs a logged-in caller
	loans := e.Group("/loans")
	loans.Use(authenticate)
	{
		loans.GET("/mine", r.loanHandler.ListMine)
		loans.POST("/:bookId", r.loanHandler.Borrow)
		loans.PATCH("/:loanId/return", r.loanHandler.Return)
		loans.GET("/:id/slip", r.loanHandler.GetSlip)

		loans.GET("", r.loanHandler.ListAll, adminOnly)
		loans.GET("/:id", r.loanHandler.GetLoan, adminOnly)
		loans.PATCH("/:id", r.loanHandler.UpdateLoan, adminOnly)
		loans.DELETE("/:id", r.loanHandler.DeleteLoan, adminOnly)
	}
}
