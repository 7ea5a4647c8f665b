package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pdfnotes-backend/config"
	"pdfnotes-backend/notes"
	"pdfnotes-backend/openai"
	"pdfnotes-backend/web"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded environment from .env")
	}

	settings := config.Load()

	key, keyOK := config.ResolveAPIKey()
	if !keyOK {
		log.Printf("WARN: %s", config.KeyGuidance())
	}

	ai := openai.NewClient(key, settings.Model, settings.MaxSourceChars)

	r := gin.Default()
	r.MaxMultipartMemory = settings.MaxUploadMB << 20

	h := notes.NewHandler(ai, settings, keyOK)
	h.RegisterRoutes(r)

	r.GET("/", func(c *gin.Context) {
		page, err := web.FS.ReadFile("index.html")
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	log.Printf("listening on %s (model=%s)", settings.Addr, settings.Model)
	r.Run(settings.Addr)
}
