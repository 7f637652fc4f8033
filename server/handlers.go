package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Marcel-MD/gourmet-avenue/domain"
)

func (s *Server) GetMenu(c *gin.Context) {
	items := s.Menu.Filter(
		c.Query("search"),
		c.Query("category"),
		c.Query("dietary"),
		c.Query("spicy"),
	)

	c.JSON(200, gin.H{
		"items":      items,
		"categories": []string{"all", "starter", "main", "dessert", "beverages"},
		"dietary":    []string{"all", "vegetarian", "vegan", "gluten-free"},
		"spicy":      []string{"all", "mild", "medium", "hot"},
	})
}

func (s *Server) cart(c *gin.Context) *domain.Cart {
	return s.Sessions.Cart(sessionId(c))
}

func cartPayload(cart *domain.Cart) gin.H {
	subtotal := cart.TotalPrice()
	fee := domain.GetConfig().DeliveryFee

	return gin.H{
		"items":       cart.Items(),
		"totalItems":  cart.TotalItems(),
		"subtotal":    subtotal,
		"deliveryFee": fee,
		"total":       subtotal + fee,
	}
}

func (s *Server) GetCart(c *gin.Context) {
	c.JSON(200, cartPayload(s.cart(c)))
}

type addItemRequest struct {
	Id       int `json:"id" binding:"required"`
	Quantity int `json:"quantity"`
}

func (s *Server) AddCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	item, ok := s.Menu.ById(req.Id)
	if !ok {
		c.JSON(404, gin.H{"error": "menu item not found"})
		return
	}

	cart := s.cart(c)
	cart.AddItem(item, req.Quantity)

	log.Info().Int("item_id", item.Id).Int("quantity", req.Quantity).Msgf("%s added to cart", item.Name)
	c.JSON(200, cartPayload(cart))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) UpdateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid item id"})
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	cart := s.cart(c)
	cart.UpdateQuantity(id, req.Quantity)

	c.JSON(200, cartPayload(cart))
}

func (s *Server) RemoveCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid item id"})
		return
	}

	cart := s.cart(c)
	cart.RemoveItem(id)

	c.JSON(200, cartPayload(cart))
}

func (s *Server) ClearCart(c *gin.Context) {
	cart := s.cart(c)
	cart.Clear()

	c.JSON(200, cartPayload(cart))
}

type checkoutRequest struct {
	domain.CheckoutForm
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

// Checkout snapshots the cart and form into an order, clears the cart
// and redirects to the confirmation page with the encoded order in the
// data query parameter.
func (s *Server) Checkout(c *gin.Context) {
	cart := s.cart(c)

	items := cart.Items()
	if len(items) == 0 {
		c.JSON(400, gin.H{"error": "cart is empty"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("Error binding JSON")
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.PaymentCard
	}
	if !req.PaymentMethod.IsValid() {
		c.JSON(400, gin.H{"error": "unknown payment method"})
		return
	}

	order := domain.NewOrder(items, cart.TotalPrice(), req.CheckoutForm, req.PaymentMethod)

	encoded, err := domain.EncodeOrder(order)
	if err != nil {
		log.Err(err).Msg("Error encoding order")
		c.JSON(500, gin.H{"error": "failed to encode order"})
		return
	}

	cart.Clear()

	log.Info().Str("order_id", order.OrderId).Float64("total", order.TotalPrice).Msg("Order placed")
	c.Redirect(303, "/cart/confirmation?data="+encoded)
}

// Confirmation decodes the handed-off order. A missing or tampered
// parameter renders the empty state instead of an error.
func (s *Server) Confirmation(c *gin.Context) {
	payload := gin.H{
		"stages":   domain.OrderStages(),
		"progress": domain.TrackingProgress,
	}

	order, err := domain.DecodeOrder(rawQuery(c, "data"))
	if err != nil {
		log.Warn().Err(err).Msg("Order data missing or malformed")
		payload["order"] = nil
		c.JSON(200, payload)
		return
	}

	fee := domain.GetConfig().DeliveryFee
	payload["order"] = order
	payload["deliveryFee"] = fee
	payload["total"] = order.TotalPrice + fee

	c.JSON(200, payload)
}

// rawQuery returns the still-escaped value of a query parameter.
// c.Query would unescape it a second time and corrupt orders whose
// fields contain '+' or '%'.
func rawQuery(c *gin.Context, key string) string {
	for _, kv := range strings.Split(c.Request.URL.RawQuery, "&") {
		if value, ok := strings.CutPrefix(kv, key+"="); ok {
			return value
		}
	}
	return ""
}
