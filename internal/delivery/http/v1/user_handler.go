package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-user-directory/internal/delivery/http/response"
	"go-user-directory/internal/domain"
	"go-user-directory/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	directoryUC domain.DirectoryUsecase
}

func NewUserHandler(r *gin.RouterGroup, directoryUC domain.DirectoryUsecase) {
	handler := &UserHandler{directoryUC: directoryUC}

	users := r.Group("/users")
	{
		users.GET("", handler.List)
		users.POST("", handler.Create)
		users.GET("/:id", handler.Get)
		users.DELETE("/:id", handler.Delete)
		users.PUT("/:id/basic-info", handler.UpdateBasicInfo)
		users.PUT("/:id/education", handler.UpdateEducation)
		users.PUT("/:id/skills-projects", handler.UpdateSkillsProjects)
		users.PUT("/:id/work-experience", handler.UpdateWorkExperience)
	}
}

// List godoc
// @Summary      List users
// @Description  Returns the directory in display order (insertion order)
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.directoryUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User directory", users)
}

// Get godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.directoryUC.Get(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User profile", user)
}

// Create godoc
// @Summary      Add a user
// @Description  Creates a user from name, e-mail and contact. Basic info is
// @Description  pre-filled from those fields the way the add-user form does.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.CreateUserInput  true  "New user"
// @Success      201      {object}  response.Response{data=domain.User}
// @Failure      400      {object}  response.Response
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input domain.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	if input.BasicInfo == nil {
		input.BasicInfo = prefillBasicInfo(input)
	}

	user, err := h.directoryUC.Create(c, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User added", user)
}

// Delete godoc
// @Summary      Delete a user
// @Description  Removes the user with the given id. Deleting an unknown id
// @Description  is a no-op, not an error.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  response.Response
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.directoryUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

// UpdateBasicInfo godoc
// @Summary      Replace a user's basic info
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      int               true  "User ID"
// @Param        payload  body      domain.BasicInfo  true  "Basic info"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      404      {object}  response.Response
// @Router       /users/{id}/basic-info [put]
func (h *UserHandler) UpdateBasicInfo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var info domain.BasicInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	user, err := h.directoryUC.UpdateBasicInfo(c, id, info)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Basic info updated", user)
}

// UpdateEducation godoc
// @Summary      Replace a user's education details
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "User ID"
// @Param        payload  body      domain.EducationDetails  true  "Education details"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      404      {object}  response.Response
// @Router       /users/{id}/education [put]
func (h *UserHandler) UpdateEducation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var edu domain.EducationDetails
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	user, err := h.directoryUC.UpdateEducation(c, id, edu)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", user)
}

// UpdateSkillsProjects godoc
// @Summary      Replace a user's skills and projects
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "User ID"
// @Param        payload  body      domain.SkillsProjects  true  "Skills and projects"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      404      {object}  response.Response
// @Router       /users/{id}/skills-projects [put]
func (h *UserHandler) UpdateSkillsProjects(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var sp domain.SkillsProjects
	if err := c.ShouldBindJSON(&sp); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	user, err := h.directoryUC.UpdateSkillsProjects(c, id, sp)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills and projects updated", user)
}

// UpdateWorkExperience godoc
// @Summary      Replace a user's work experience
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "User ID"
// @Param        payload  body      []domain.WorkDomain  true  "Work experience"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      404      {object}  response.Response
// @Router       /users/{id}/work-experience [put]
func (h *UserHandler) UpdateWorkExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var exp []domain.WorkDomain
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	user, err := h.directoryUC.UpdateWorkExperience(c, id, exp)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience updated", user)
}

// prefillBasicInfo mirrors the add-user form: when no basic info is supplied
// the first and last name are split out of the display name and the e-mail
// and phone are copied over.
func prefillBasicInfo(input domain.CreateUserInput) *domain.BasicInfo {
	info := domain.BasicInfo{
		Email: input.Email,
		Phone: input.Contact,
	}
	parts := strings.Fields(input.Name)
	if len(parts) > 0 {
		info.FirstName = parts[0]
	}
	if len(parts) > 1 {
		info.LastName = parts[1]
	}
	return &info
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid user id"))
		return 0, false
	}
	return id, true
}
