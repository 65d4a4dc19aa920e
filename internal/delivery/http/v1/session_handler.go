package v1

import (
	"net/http"
	"strconv"

	"go-user-directory/internal/delivery/http/response"
	"go-user-directory/internal/domain"
	"go-user-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the per-section editing protocol: begin seeds a
// draft from the committed profile, draft mutations stay local to the
// session, and save or cancel ends it.
type SessionHandler struct {
	editorUC domain.EditorUsecase
}

func NewSessionHandler(r *gin.RouterGroup, editorUC domain.EditorUsecase) {
	handler := &SessionHandler{editorUC: editorUC}

	r.POST("/users/:id/sessions/:section", handler.Begin)

	sessions := r.Group("/sessions")
	{
		sessions.GET("/:sid", handler.Get)
		sessions.PUT("/:sid/draft", handler.UpdateDraft)
		sessions.POST("/:sid/work-experience/domains", handler.AddDomain)
		sessions.DELETE("/:sid/work-experience/domains/:idx", handler.RemoveDomain)
		sessions.POST("/:sid/work-experience/domains/:idx/sub-domains", handler.AddSubDomain)
		sessions.DELETE("/:sid/work-experience/domains/:idx/sub-domains/:sidx", handler.RemoveSubDomain)
		sessions.POST("/:sid/save", handler.Save)
		sessions.POST("/:sid/cancel", handler.Cancel)
	}
}

// Begin godoc
// @Summary      Start editing a profile section
// @Description  Seeds a draft from the current committed section value and
// @Description  returns the edit session.
// @Tags         sessions
// @Produce      json
// @Param        id       path      int     true  "User ID"
// @Param        section  path      string  true  "Section"  Enums(basic-info, education, skills-projects, work-experience)
// @Success      201      {object}  response.Response{data=domain.EditSession}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /users/{id}/sessions/{section} [post]
func (h *SessionHandler) Begin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	session, err := h.editorUC.Begin(c, id, domain.Section(c.Param("section")))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Edit session started", session)
}

// Get godoc
// @Summary      Get an edit session
// @Tags         sessions
// @Produce      json
// @Param        sid  path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.EditSession}
// @Failure      404  {object}  response.Response
// @Router       /sessions/{sid} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.editorUC.Get(c, c.Param("sid"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Edit session", session)
}

// UpdateDraft godoc
// @Summary      Replace the session draft
// @Description  Applies field edits to the draft only; the committed profile
// @Description  is untouched until save.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sid      path      string        true  "Session ID"
// @Param        payload  body      domain.Draft  true  "Draft"
// @Success      200      {object}  response.Response{data=domain.EditSession}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /sessions/{sid}/draft [put]
func (h *SessionHandler) UpdateDraft(c *gin.Context) {
	var draft domain.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	session, err := h.editorUC.UpdateDraft(c, c.Param("sid"), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Draft updated", session)
}

// AddDomain godoc
// @Summary      Append a blank work domain to the draft
// @Tags         sessions
// @Produce      json
// @Param        sid  path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.EditSession}
// @Failure      400  {object}  response.Response
// @Router       /sessions/{sid}/work-experience/domains [post]
func (h *SessionHandler) AddDomain(c *gin.Context) {
	session, err := h.editorUC.AddDomain(c, c.Param("sid"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Domain added", session)
}

// RemoveDomain godoc
// @Summary      Remove a work domain from the draft by position
// @Tags         sessions
// @Produce      json
// @Param        sid  path      string  true  "Session ID"
// @Param        idx  path      int     true  "Domain index"
// @Success      200  {object}  response.Response{data=domain.EditSession}
// @Failure      400  {object}  response.Response
// @Router       /sessions/{sid}/work-experience/domains/{idx} [delete]
func (h *SessionHandler) RemoveDomain(c *gin.Context) {
	idx, ok := parseIndex(c, "idx")
	if !ok {
		return
	}
	session, err := h.editorUC.RemoveDomain(c, c.Param("sid"), idx)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Domain removed", session)
}

// AddSubDomain godoc
// @Summary      Append a blank sub-domain to a draft domain
// @Tags         sessions
// @Produce      json
// @Param        sid  path      string  true  "Session ID"
// @Param        idx  path      int     true  "Domain index"
// @Success      200  {object}  response.Response{data=domain.EditSession}
// @Failure      400  {object}  response.Response
// @Router       /sessions/{sid}/work-experience/domains/{idx}/sub-domains [post]
func (h *SessionHandler) AddSubDomain(c *gin.Context) {
	idx, ok := parseIndex(c, "idx")
	if !ok {
		return
	}
	session, err := h.editorUC.AddSubDomain(c, c.Param("sid"), idx)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Sub-domain added", session)
}

// RemoveSubDomain godoc
// @Summary      Remove a sub-domain from a draft domain by position
// @Description  Removing the last sub-domain of a domain is allowed.
// @Tags         sessions
// @Produce      json
// @Param        sid   path      string  true  "Session ID"
// @Param        idx   path      int     true  "Domain index"
// @Param        sidx  path      int     true  "Sub-domain index"
// @Success      200   {object}  response.Response{data=domain.EditSession}
// @Failure      400   {object}  response.Response
// @Router       /sessions/{sid}/work-experience/domains/{idx}/sub-domains/{sidx} [delete]
func (h *SessionHandler) RemoveSubDomain(c *gin.Context) {
	idx, ok := parseIndex(c, "idx")
	if !ok {
		return
	}
	sidx, ok := parseIndex(c, "sidx")
	if !ok {
		return
	}
	session, err := h.editorUC.RemoveSubDomain(c, c.Param("sid"), idx, sidx)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Sub-domain removed", session)
}

// Save godoc
// @Summary      Commit the draft and end the session
// @Tags         sessions
// @Produce      json
// @Param        sid  path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      404  {object}  response.Response
// @Router       /sessions/{sid}/save [post]
func (h *SessionHandler) Save(c *gin.Context) {
	user, err := h.editorUC.Save(c, c.Param("sid"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Changes saved", user)
}

// Cancel godoc
// @Summary      Discard the draft and end the session
// @Tags         sessions
// @Produce      json
// @Param        sid  path      string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /sessions/{sid}/cancel [post]
func (h *SessionHandler) Cancel(c *gin.Context) {
	if err := h.editorUC.Cancel(c, c.Param("sid")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Edit cancelled", nil)
}

func parseIndex(c *gin.Context, name string) (int, bool) {
	idx, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid index"))
		return 0, false
	}
	return idx, true
}
