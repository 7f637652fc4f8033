package domain

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

type Menu struct {
	ItemsCount int
	Items      []MenuItem
}

type MenuItem struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	SpicyLevel  string   `json:"spicyLevel"`
	Dietary     []string `json:"dietary"`
	Popular     bool     `json:"popular"`
}

func GetMenu() Menu {
	file, err := os.Open(cfg.MenuPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening menu.json")
	}
	defer file.Close()

	byteValue, _ := io.ReadAll(file)
	var menu Menu
	json.Unmarshal(byteValue, &menu)

	menu.ItemsCount = len(menu.Items)
	return menu
}

func (m Menu) ById(id int) (MenuItem, bool) {
	for _, item := range m.Items {
		if item.Id == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Filter narrows the menu the same way the menu page filters do.
// Empty or "all" facet values match everything.
func (m Menu) Filter(query, category, dietary, spicy string) []MenuItem {
	query = strings.ToLower(query)
	category = strings.ToLower(category)
	dietary = strings.ToLower(dietary)
	spicy = strings.ToLower(spicy)

	filtered := make([]MenuItem, 0, len(m.Items))
	for _, item := range m.Items {
		if !matchesQuery(item, query) {
			continue
		}
		if !isAll(category) && strings.ToLower(item.Category) != category {
			continue
		}
		if !isAll(dietary) && !hasTag(item.Dietary, dietary) {
			continue
		}
		if !isAll(spicy) && strings.ToLower(item.SpicyLevel) != spicy {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

func matchesQuery(item MenuItem, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), query) ||
		strings.Contains(strings.ToLower(item.Description), query)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

func isAll(facet string) bool {
	return facet == "" || facet == "all"
}
