package main

import (
	"os"
	"strconv"

	"github.com/Marcel-MD/gourmet-avenue/domain"
	"github.com/Marcel-MD/gourmet-avenue/server"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config()
	domain.SetConfig(cfg)

	menu := domain.GetMenu()
	log.Info().Int("items", menu.ItemsCount).Msg("Menu loaded")

	srv := server.New(menu)
	r := srv.Router()
	r.Run(":" + cfg.Port)
}

func config() domain.Config {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Logger = log.With().Caller().Logger()

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("No .env file found, using defaults")
	}

	cfg := domain.GetConfig()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if menuPath := os.Getenv("MENU_PATH"); menuPath != "" {
		cfg.MenuPath = menuPath
	}
	if fee := os.Getenv("DELIVERY_FEE"); fee != "" {
		f, err := strconv.ParseFloat(fee, 64)
		if err != nil {
			log.Fatal().Err(err).Msg("Error parsing DELIVERY_FEE")
		}
		cfg.DeliveryFee = f
	}
	if eta := os.Getenv("ESTIMATED_DELIVERY"); eta != "" {
		cfg.EstimatedDelivery = eta
	}

	return cfg
}
