package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardbot/internal/card"
)

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// themesHandler lists the theme catalog.
func themesHandler(c *gin.Context) {
	type entry struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	var out []entry
	for _, t := range card.Themes() {
		out = append(out, entry{ID: t.ID, Label: t.Label})
	}
	c.JSON(http.StatusOK, gin.H{"default": card.DefaultThemeID, "themes": out})
}

// cardRequest is the JSON body for POST /api/card. The logo travels as
// base64 since the response is the raw PNG.
type cardRequest struct {
	First   string `json:"first" binding:"required"`
	Last    string `json:"last" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Org     string `json:"org"`
	Title   string `json:"title"`
	Theme   string `json:"theme"`
	LogoB64 string `json:"logo_base64"`
}

// cardHandler renders a business card from a JSON contact record and
// returns it as image/png.
func cardHandler(c *gin.Context) {
	var req cardRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var logo []byte
	if req.LogoB64 != "" {
		raw, err := base64.StdEncoding.DecodeString(req.LogoB64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "logo_base64 is not valid base64"})
			return
		}
		logo = raw
	}
	rec := card.ContactRecord{
		First:   req.First,
		Last:    req.Last,
		Phone:   req.Phone,
		Email:   req.Email,
		Org:     req.Org,
		Title:   req.Title,
		ThemeID: req.Theme,
		Logo:    logo,
	}
	png, err := card.Render(rec)
	if err != nil {
		var encErr *card.EncodingError
		if errors.As(err, &encErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
