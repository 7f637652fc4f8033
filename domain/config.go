package domain

type Config struct {
	Port     string `json:"port"`
	MenuPath string `json:"menu_path"`

	DeliveryFee       float64 `json:"delivery_fee"`
	EstimatedDelivery string  `json:"estimated_delivery"`
}

var cfg Config = Config{
	Port:     "8080",
	MenuPath: "config/menu.json",

	DeliveryFee:       5,
	EstimatedDelivery: "30-45 minutes",
}

func SetConfig(c Config) {
	cfg = c
}

func GetConfig() Config {
	return cfg
}
