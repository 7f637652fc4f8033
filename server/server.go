package server

import (
	"github.com/gin-gonic/gin"

	"github.com/Marcel-MD/gourmet-avenue/domain"
)

type Server struct {
	Menu     domain.Menu
	Sessions *domain.Sessions
}

func New(menu domain.Menu) *Server {
	return &Server{
		Menu:     menu,
		Sessions: domain.NewSessions(),
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(SessionMiddleware())

	r.GET("/", s.Home)
	r.GET("/about", s.About)
	r.GET("/gallery", s.Gallery)
	r.GET("/contact", s.Contact)
	r.GET("/terms", s.Terms)
	r.GET("/privacy", s.Privacy)

	r.GET("/menu", s.GetMenu)

	r.GET("/cart", s.GetCart)
	r.POST("/cart/items", s.AddCartItem)
	r.PUT("/cart/items/:id", s.UpdateCartItem)
	r.DELETE("/cart/items/:id", s.RemoveCartItem)
	r.DELETE("/cart", s.ClearCart)

	r.POST("/cart/checkout", s.Checkout)
	r.GET("/cart/confirmation", s.Confirmation)

	r.POST("/reservations", s.CreateReservation)
	r.POST("/contact", s.CreateContactMessage)
	r.POST("/login", s.Login)
	r.POST("/register", s.Register)

	return r
}
