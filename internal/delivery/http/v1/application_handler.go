package v1

import (
	"net/http"
	"strconv"

	"go-jobnetwork-backend/internal/delivery/http/response"
	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application workflow routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := r.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("/my-applications", handler.ListMine)
		applications.GET("/received", handler.ListReceived)
		applications.GET("/post/:postId", handler.ListForPost)
		applications.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type ApplyRequest struct {
	PostID int64 `json:"post_id" binding:"required"`
	CvID   int64 `json:"cv_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed accepted rejected"`
}

// Apply godoc
// @Summary      Apply to a post
// @Description  Submit an application with an active CV (Candidate only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))
	accountType := c.GetString(string(domain.KeyAccountType))

	if accountType != domain.AccountTypeCandidate {
		c.Error(apperror.Forbidden("Only candidates can apply to posts"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), actorID, req.PostID, req.CvID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListMine godoc
// @Summary      My applications
// @Description  Applications submitted by the current candidate, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applications/my-applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))
	accountType := c.GetString(string(domain.KeyAccountType))

	if accountType != domain.AccountTypeCandidate {
		c.Error(apperror.Forbidden("Only candidates have submitted applications"))
		return
	}

	apps, err := h.applicationUC.ListMine(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// ListReceived godoc
// @Summary      Received applications
// @Description  Applications across all of the current company's posts, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applications/received [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListReceived(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))
	accountType := c.GetString(string(domain.KeyAccountType))

	if accountType != domain.AccountTypeCompany {
		c.Error(apperror.Forbidden("Only companies receive applications"))
		return
	}

	apps, err := h.applicationUC.ListReceived(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// ListForPost godoc
// @Summary      Applications for a post
// @Description  Applications on one post (post owner only; 404 otherwise)
// @Tags         applications
// @Produce      json
// @Param        postId  path      int  true  "Post ID"
// @Success      200     {object}  response.Response{data=[]domain.Application}
// @Failure      404     {object}  response.Response
// @Router       /applications/post/{postId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForPost(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	postID, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid post ID"))
		return
	}

	apps, err := h.applicationUC.ListForPost(c.Request.Context(), actorID, postID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  pending → reviewed/accepted/rejected, reviewed → accepted/rejected; accepted and rejected are terminal (post owner only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.UpdateStatus(c.Request.Context(), actorID, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
