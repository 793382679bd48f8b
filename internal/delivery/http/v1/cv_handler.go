package v1

import (
	"net/http"
	"strconv"

	"go-jobnetwork-backend/internal/delivery/http/response"
	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

// NewCVHandler registers CV registry routes. uploadLimiter throttles the
// multipart upload endpoint specifically.
func NewCVHandler(r *gin.RouterGroup, cvUC domain.CVUsecase, uploadLimiter gin.HandlerFunc) {
	handler := &CVHandler{cvUC: cvUC}

	cvs := r.Group("/cvs")
	{
		cvs.POST("", uploadLimiter, handler.Upload)
		cvs.GET("", handler.List)
		cvs.PATCH("/:id", handler.Update)
		cvs.DELETE("/:id", handler.Delete)
	}
}

type UpdateCVRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=120,valid_name"`
	IsActive *bool   `json:"is_active"`
}

// Upload godoc
// @Summary      Upload a CV
// @Description  Upload a CV document (Candidate only). Multipart fields: file, name
// @Tags         cvs
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "CV document (.pdf, .doc, .docx)"
// @Param        name  formData  string  false  "Display name"
// @Success      201   {object}  response.Response{data=domain.CV}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /cvs [post]
// @Security     BearerAuth
func (h *CVHandler) Upload(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))
	accountType := c.GetString(string(domain.KeyAccountType))

	if accountType != domain.AccountTypeCandidate {
		c.Error(apperror.Forbidden("Only candidates can upload CVs"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("CV file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	defer file.Close()

	cv, err := h.cvUC.Upload(
		c.Request.Context(),
		actorID,
		c.PostForm("name"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "CV uploaded", cv)
}

// List godoc
// @Summary      List my CVs
// @Tags         cvs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CV}
// @Router       /cvs [get]
// @Security     BearerAuth
func (h *CVHandler) List(c *gin.Context) {
	cvs, err := h.cvUC.List(c.Request.Context(), c.GetString(string(domain.KeyUserID)))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CVs retrieved", cvs)
}

// Update godoc
// @Summary      Rename or toggle a CV
// @Description  Deactivating a CV does not retract existing applications
// @Tags         cvs
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "CV ID"
// @Param        body  body      UpdateCVRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.CV}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /cvs/{id} [patch]
// @Security     BearerAuth
func (h *CVHandler) Update(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid CV ID"))
		return
	}

	var req UpdateCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	cv, err := h.cvUC.Update(c.Request.Context(), actorID, id, req.Name, req.IsActive)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV updated", cv)
}

// Delete godoc
// @Summary      Delete a CV
// @Description  Blocked while applications reference the CV
// @Tags         cvs
// @Produce      json
// @Param        id  path      int  true  "CV ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /cvs/{id} [delete]
// @Security     BearerAuth
func (h *CVHandler) Delete(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid CV ID"))
		return
	}

	if err := h.cvUC.Delete(c.Request.Context(), actorID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV deleted", nil)
}
