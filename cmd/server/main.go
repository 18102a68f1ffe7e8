package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardbot/internal/api"
	"github.com/youruser/cardbot/internal/bot"
)

func main() {
	if token := os.Getenv("BOT_TOKEN"); token != "" {
		b, err := bot.New(token)
		if err != nil {
			log.Fatal("bot init:", err)
		}
		go func() {
			if err := b.Run(); err != nil {
				log.Fatal("bot:", err)
			}
		}()
	} else {
		log.Println("BOT_TOKEN not set; running HTTP API only")
	}

	r := gin.Default()
	api.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
