package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	trackerService service.TrackerService
}

func NewFriendHandler(trackerService service.TrackerService) *FriendHandler {
	return &FriendHandler{trackerService: trackerService}
}

type CreateFriendRequest struct {
	Name string `json:"name" binding:"required"`
}

type FriendListResponse struct {
	Friends []domain.Friend `json:"friends"`
	Count   int             `json:"count"`
}

func (h *FriendHandler) ListFriends(c *gin.Context) {
	friends, err := h.trackerService.GetFriends(c.Request.Context())
	if err != nil {
		respondServiceError(c, "retrieve friends", err)
		return
	}
	c.JSON(http.StatusOK, FriendListResponse{
		Friends: friends,
		Count:   service.FriendCount(friends),
	})
}

func (h *FriendHandler) CreateFriend(c *gin.Context) {
	var req CreateFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	friend, err := h.trackerService.AddFriend(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, "create friend", err)
		return
	}
	c.JSON(http.StatusCreated, friend)
}

// DeleteFriend always answers 204; an unknown id is not an error.
func (h *FriendHandler) DeleteFriend(c *gin.Context) {
	if err := h.trackerService.DeleteFriend(c.Request.Context(), c.Param("friendId")); err != nil {
		respondServiceError(c, "delete friend", err)
		return
	}
	c.Status(http.StatusNoContent)
}
