package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Informational pages carry static content only; the rendering itself
// belongs to the front end.

func (s *Server) Home(c *gin.Context) {
	popular := make([]any, 0)
	for _, item := range s.Menu.Items {
		if item.Popular {
			popular = append(popular, item)
		}
	}

	c.JSON(200, gin.H{
		"name":         "Gourmet Avenue",
		"tagline":      "Join Us for an Unforgettable Experience",
		"openingHours": "Mon-Sun: 11:00 - 23:00",
		"popular":      popular,
	})
}

func (s *Server) About(c *gin.Context) {
	c.JSON(200, gin.H{
		"title": "Our Story",
		"sections": []gin.H{
			{"heading": "Our Vision", "body": "To be the neighbourhood table everyone comes back to."},
			{"heading": "Our Mission", "body": "Honest food, carefully sourced, served with warmth."},
			{"heading": "Our Values", "body": "Fresh ingredients, fair prices, no shortcuts."},
		},
	})
}

func (s *Server) Gallery(c *gin.Context) {
	images := make([]string, 0, len(s.Menu.Items))
	for _, item := range s.Menu.Items {
		images = append(images, item.Image)
	}

	c.JSON(200, gin.H{
		"title":    "Our Food Gallery",
		"subtitle": "Explore our culinary masterpieces",
		"images":   images,
	})
}

func (s *Server) Contact(c *gin.Context) {
	c.JSON(200, gin.H{
		"title":        "Get in Touch",
		"email":        "hello@foodiesbyglance.com",
		"phone":        "+1 (555) 012-3456",
		"address":      "42 Gourmet Avenue",
		"openingHours": "Mon-Sun: 11:00 - 23:00",
	})
}

func (s *Server) Terms(c *gin.Context) {
	c.JSON(200, gin.H{
		"title": "Terms of Service",
		"body":  "By placing an order you agree to our terms of service and privacy policy.",
	})
}

func (s *Server) Privacy(c *gin.Context) {
	c.JSON(200, gin.H{
		"title": "Privacy Policy",
		"body":  "Order details are used only to prepare and deliver your order.",
	})
}

type reservationRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Guests          int    `json:"guests" binding:"required"`
	Date            string `json:"date" binding:"required"`
	TimeSlot        string `json:"timeSlot" binding:"required"`
	TableType       string `json:"tableType"`
	SpecialRequests string `json:"specialRequests"`
}

func (s *Server) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	log.Info().Str("name", req.Name).Int("guests", req.Guests).Msgf("Reservation requested for %s %s", req.Date, req.TimeSlot)
	c.JSON(200, gin.H{"message": "Reservation received"})
}

type contactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (s *Server) CreateContactMessage(c *gin.Context) {
	var req contactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	log.Info().Str("email", req.Email).Msg("Contact message received")
	c.JSON(200, gin.H{"message": "Message received"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login and Register acknowledge the forms only. There is no account
// store or session security behind them.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"message": "Logged in"})
}

type registerRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Contact         string `json:"contact"`
	District        string `json:"district"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(400, gin.H{"error": "passwords do not match"})
		return
	}

	c.JSON(200, gin.H{"message": "Account created"})
}
