// Package dto defines the form objects for the auth feature's HTTP transport layer.
package dto

// RegisterForm represents the submitted fields of the /register form.
// It uses Gin's binding tags for validation (required, lengths, email format).
type RegisterForm struct {
	Username  string `form:"username" binding:"required,max=20"`
	Password  string `form:"password" binding:"required,min=6"`
	Email     string `form:"email" binding:"required,email,max=50"`
	FirstName string `form:"first_name" binding:"required,max=30"`
	LastName  string `form:"last_name" binding:"required,max=30"`
}
