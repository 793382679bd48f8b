package v1

import (
	"net/http"
	"strconv"

	"go-jobnetwork-backend/internal/delivery/http/response"
	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC domain.PostUsecase
}

// NewPostHandler registers post catalog and feed routes
func NewPostHandler(r *gin.RouterGroup, postUC domain.PostUsecase) {
	handler := &PostHandler{postUC: postUC}

	posts := r.Group("/posts")
	{
		posts.GET("", handler.Feed)
		posts.GET("/user/:userId", handler.ListByUser)
		posts.POST("", handler.Create)
		posts.GET("/:id", handler.Get)
		posts.PUT("/:id", handler.Update)
		posts.DELETE("/:id", handler.Delete)
	}
}

type CreatePostRequest struct {
	Type        string `json:"type" binding:"required,post_type"`
	Title       string `json:"title" binding:"required,max=200,no_emoji"`
	Description string `json:"description" binding:"required,max=5000"`
	CvID        *int64 `json:"cv_id"`
}

type UpdatePostRequest struct {
	Title       string `json:"title" binding:"required,max=200,no_emoji"`
	Description string `json:"description" binding:"required,max=5000"`
	CvID        *int64 `json:"cv_id"`
}

// Feed godoc
// @Summary      Ranked post feed
// @Description  Posts ordered by expiration bucket, follow bucket, then recency
// @Tags         posts
// @Produce      json
// @Param        page   query     int     false  "Page number"
// @Param        limit  query     int     false  "Page size"
// @Param        type   query     string  false  "Filter by post type"
// @Success      200    {object}  response.Response{data=response.Paginated}
// @Router       /posts [get]
// @Security     BearerAuth
func (h *PostHandler) Feed(c *gin.Context) {
	viewerID := c.GetString(string(domain.KeyUserID))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	postType := c.Query("type")

	feed, total, err := h.postUC.Feed(c.Request.Context(), viewerID, postType, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Feed retrieved", response.Paginated{
		Items: feed,
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// ListByUser godoc
// @Summary      A user's posts
// @Description  Posts by one author, non-expired first then newest first
// @Tags         posts
// @Produce      json
// @Param        userId  path      string  true   "User ID"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Param        type    query     string  false  "Filter by post type"
// @Success      200     {object}  response.Response{data=response.Paginated}
// @Router       /posts/user/{userId} [get]
// @Security     BearerAuth
func (h *PostHandler) ListByUser(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	postType := c.Query("type")

	posts, total, err := h.postUC.ListByUser(c.Request.Context(), c.Param("userId"), postType, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Posts retrieved", response.Paginated{
		Items: posts,
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Create godoc
// @Summary      Create a post
// @Description  find_job posts require a CV and candidate authorship; find_candidate posts require company authorship
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePostRequest  true  "Post data"
// @Success      201   {object}  response.Response{data=domain.Post}
// @Failure      400   {object}  response.Response
// @Router       /posts [post]
// @Security     BearerAuth
func (h *PostHandler) Create(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post := &domain.Post{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		CvID:        req.CvID,
	}
	if err := h.postUC.CreatePost(c.Request.Context(), actorID, post); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created", post)
}

// Get godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id  path      int  true  "Post ID"
// @Success      200 {object}  response.Response{data=domain.FeedPost}
// @Failure      404 {object}  response.Response
// @Router       /posts/{id} [get]
// @Security     BearerAuth
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid post ID"))
		return
	}

	post, err := h.postUC.GetPost(c.Request.Context(), c.GetString(string(domain.KeyUserID)), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post retrieved", post)
}

// Update godoc
// @Summary      Update a post
// @Description  Owner only; ownership failures surface as 404
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Post ID"
// @Param        body  body      UpdatePostRequest  true  "Post data"
// @Success      200   {object}  response.Response{data=domain.Post}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /posts/{id} [put]
// @Security     BearerAuth
func (h *PostHandler) Update(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid post ID"))
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post := &domain.Post{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		CvID:        req.CvID,
	}
	if err := h.postUC.UpdatePost(c.Request.Context(), actorID, post); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated", post)
}

// Delete godoc
// @Summary      Delete a post
// @Description  Owner only; blocked while applications reference the post
// @Tags         posts
// @Produce      json
// @Param        id  path      int  true  "Post ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /posts/{id} [delete]
// @Security     BearerAuth
func (h *PostHandler) Delete(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid post ID"))
		return
	}

	if err := h.postUC.DeletePost(c.Request.Context(), actorID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post deleted", nil)
}
