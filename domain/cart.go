package domain

import "sync"

type CartItem struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart holds one session's selected items. Totals are always recomputed
// from the item list, never stored separately.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges by menu item id: adding an item already in the cart
// increments its quantity. A quantity below 1 is treated as 1.
func (c *Cart) AddItem(item MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Id == item.Id {
			c.items[i].Quantity += quantity
			return
		}
	}

	c.items = append(c.items, CartItem{
		Id:       item.Id,
		Name:     item.Name,
		Price:    item.Price,
		Image:    item.Image,
		Quantity: quantity,
	})
}

// UpdateQuantity sets the quantity of an item; a quantity of 0 or less
// removes it. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Id == id {
			if quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			} else {
				c.items[i].Quantity = quantity
			}
			return
		}
	}
}

// RemoveItem deletes an item from the cart. Unknown ids are a no-op.
func (c *Cart) RemoveItem(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Id == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Items returns a snapshot copy of the cart contents.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}
