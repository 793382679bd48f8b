package v1

import (
	"net/http"

	"go-jobnetwork-backend/internal/delivery/http/response"
	"go-jobnetwork-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followUC domain.FollowUsecase
}

// NewFollowHandler registers relationship graph routes
func NewFollowHandler(r *gin.RouterGroup, followUC domain.FollowUsecase) {
	handler := &FollowHandler{followUC: followUC}

	follows := r.Group("/follows")
	{
		follows.POST("/:userId", handler.Follow)
		follows.DELETE("/:userId", handler.Unfollow)
		follows.GET("/followers", handler.MyFollowers)
		follows.GET("/followers/:userId", handler.Followers)
		follows.GET("/following", handler.MyFollowing)
		follows.GET("/following/:userId", handler.Following)
		follows.GET("/counts/:userId", handler.Counts)
	}
}

// Follow godoc
// @Summary      Follow a user
// @Description  Start following another user
// @Tags         follows
// @Produce      json
// @Param        userId  path      string  true  "User ID to follow"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /follows/{userId} [post]
// @Security     BearerAuth
func (h *FollowHandler) Follow(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))
	targetID := c.Param("userId")

	if err := h.followUC.Follow(c.Request.Context(), actorID, targetID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Now following user", nil)
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         follows
// @Produce      json
// @Param        userId  path      string  true  "User ID to unfollow"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /follows/{userId} [delete]
// @Security     BearerAuth
func (h *FollowHandler) Unfollow(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))
	targetID := c.Param("userId")

	if err := h.followUC.Unfollow(c.Request.Context(), actorID, targetID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Unfollowed user", nil)
}

// MyFollowers godoc
// @Summary      List my followers
// @Tags         follows
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.FollowUser}
// @Router       /follows/followers [get]
// @Security     BearerAuth
func (h *FollowHandler) MyFollowers(c *gin.Context) {
	h.listFollowers(c, c.GetString(string(domain.KeyUserID)))
}

// Followers godoc
// @Summary      List a user's followers
// @Tags         follows
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.FollowUser}
// @Router       /follows/followers/{userId} [get]
// @Security     BearerAuth
func (h *FollowHandler) Followers(c *gin.Context) {
	h.listFollowers(c, c.Param("userId"))
}

// MyFollowing godoc
// @Summary      List users I follow
// @Tags         follows
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.FollowUser}
// @Router       /follows/following [get]
// @Security     BearerAuth
func (h *FollowHandler) MyFollowing(c *gin.Context) {
	h.listFollowing(c, c.GetString(string(domain.KeyUserID)))
}

// Following godoc
// @Summary      List users a user follows
// @Tags         follows
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.FollowUser}
// @Router       /follows/following/{userId} [get]
// @Security     BearerAuth
func (h *FollowHandler) Following(c *gin.Context) {
	h.listFollowing(c, c.Param("userId"))
}

// Counts godoc
// @Summary      Follower/following counts
// @Tags         follows
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=domain.FollowCounts}
// @Failure      404     {object}  response.Response
// @Router       /follows/counts/{userId} [get]
// @Security     BearerAuth
func (h *FollowHandler) Counts(c *gin.Context) {
	counts, err := h.followUC.Counts(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Counts retrieved", counts)
}

func (h *FollowHandler) listFollowers(c *gin.Context, userID string) {
	followers, err := h.followUC.Followers(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Followers retrieved", followers)
}

func (h *FollowHandler) listFollowing(c *gin.Context, userID string) {
	following, err := h.followUC.Following(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Following retrieved", following)
}
