package dto

// LoginForm represents the submitted fields of the /login form.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
