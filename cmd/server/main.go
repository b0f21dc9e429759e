package main // Entry point package

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mmirshod/fyyur/internal/config"
	"github.com/mmirshod/fyyur/internal/database"
	"github.com/mmirshod/fyyur/internal/handler"
	"github.com/mmirshod/fyyur/internal/repository"
	"github.com/mmirshod/fyyur/internal/router"
	"github.com/mmirshod/fyyur/internal/view"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.DBName); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("template parsing failed: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	router.RegisterRoutes(e,
		handler.NewVenueHandler(venueRepo),
		handler.NewArtistHandler(artistRepo),
		handler.NewShowHandler(showRepo, venueRepo, artistRepo, cfg.AMQPURL),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
