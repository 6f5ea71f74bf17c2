package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"meetapp/internal/helpers"
	"meetapp/internal/models"
	"meetapp/internal/services"
)

type meetupRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Date        string `json:"date" binding:"required"`
	BannerID    int64  `json:"banner_id" binding:"required"`
}

type meetupUpdateRequest struct {
	ID int64 `json:"id" binding:"required"`
	meetupRequest
}

func (r *meetupRequest) toInput() (*services.MeetupInput, error) {
	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return nil, err
	}
	return &services.MeetupInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Date:        date,
		BannerID:    r.BannerID,
	}, nil
}

// respondMeetupError maps the service error taxonomy onto the HTTP
// contract: 400 for validation, not-found and ownership failures, 401
// for the future-date policy, 500 for anything below the gateway.
func respondMeetupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
	case errors.Is(err, models.ErrPastDate):
		c.JSON(http.StatusUnauthorized, gin.H{"error": models.ErrPastDate.Error()})
	case errors.Is(err, models.ErrMeetupNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrMeetupNotFound.Error()})
	case errors.Is(err, models.ErrNotOwner):
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrNotOwner.Error()})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
	}
}

func ListMeetups(m *services.MeetupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1
		if raw := c.Query("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page parameter"})
				return
			}
			page = parsed
		}

		var filterDate *time.Time
		if raw := c.Query("date"); raw != "" {
			parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date parameter"})
				return
			}
			filterDate = &parsed
		}

		meetups, err := m.List(c.Request.Context(), page, filterDate)
		if err != nil {
			respondMeetupError(c, err)
			return
		}

		c.JSON(http.StatusOK, meetups)
	}
}

func CreateMeetup(m *services.MeetupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.RequesterID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req meetupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			return
		}

		input, err := req.toInput()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			return
		}

		meetup, err := m.Create(c.Request.Context(), input, userID)
		if err != nil {
			respondMeetupError(c, err)
			return
		}

		c.JSON(http.StatusOK, meetup)
	}
}

func UpdateMeetup(m *services.MeetupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.RequesterID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req meetupUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			return
		}

		input, err := req.toInput()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidInput.Error()})
			return
		}

		meetup, err := m.Update(c.Request.Context(), req.ID, input, userID)
		if err != nil {
			respondMeetupError(c, err)
			return
		}

		c.JSON(http.StatusOK, meetup)
	}
}

func DeleteMeetup(m *services.MeetupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.RequesterID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup ID format"})
			return
		}

		if err := m.Delete(c.Request.Context(), id, userID); err != nil {
			respondMeetupError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "meetup deleted successfully"})
	}
}
