package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// GetFeatured mengembalikan slide unggulan dan posisi carousel saat ini.
func (ctrl *Controller) GetFeatured(c *gin.Context) {
	ctrl.featuredState(c)
}

func (ctrl *Controller) NextSlide(c *gin.Context) {
	_, err := ctrl.Carousel.Next()
	ctrl.featuredResult(c, err)
}

func (ctrl *Controller) PrevSlide(c *gin.Context) {
	_, err := ctrl.Carousel.Prev()
	ctrl.featuredResult(c, err)
}

func (ctrl *Controller) PlayCarousel(c *gin.Context) {
	ctrl.featuredResult(c, ctrl.Carousel.Start())
}

func (ctrl *Controller) StopCarousel(c *gin.Context) {
	ctrl.featuredResult(c, ctrl.Carousel.Stop())
}

func (ctrl *Controller) ToggleCarousel(c *gin.Context) {
	ctrl.featuredResult(c, ctrl.Carousel.Toggle())
}

// HoverCarousel menahan auto-advance selama pointer berada di atas carousel.
func (ctrl *Controller) HoverCarousel(c *gin.Context) {
	ctrl.featuredResult(c, ctrl.Carousel.Pause())
}

func (ctrl *Controller) LeaveCarousel(c *gin.Context) {
	ctrl.featuredResult(c, ctrl.Carousel.Resume())
}

// JumpToSlide memindahkan carousel ke indeks :index.
func (ctrl *Controller) JumpToSlide(c *gin.Context) {
	index, err := parseDecimal(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide index"})
		return
	}
	ctrl.featuredResult(c, ctrl.Carousel.JumpTo(cast.ToInt(index)))
}

func (ctrl *Controller) featuredResult(c *gin.Context, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	ctrl.featuredState(c)
}

func (ctrl *Controller) featuredState(c *gin.Context) {
	state := ctrl.Carousel.State()
	c.JSON(http.StatusOK, gin.H{
		"slides":  ctrl.Featured,
		"state":   state,
		"current": ctrl.Featured[state.CurrentIndex],
	})
}
