package controllers

import (
	"eatery/pkg/resp"
	"eatery/services"
	"eatery/utils"
	"eatery/validation"

	"github.com/gin-gonic/gin"
)

type MyUserController struct {
	Users *services.UserService
}

// GET /api/my/user
func (ctl *MyUserController) Get(c *gin.Context) {
	u, err := ctl.Users.Get(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, u)
}

// PUT /api/my/user
func (ctl *MyUserController) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, "invalid body")
		return
	}
	u, err := ctl.Users.UpdateProfile(c.Request.Context(), utils.CurrentUserID(c), validation.Fields(body))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, u)
}
