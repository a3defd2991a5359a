// Package dto defines the form objects for the feedback feature's HTTP transport layer.
package dto

// FeedbackForm represents the submitted fields of the feedback add and edit forms.
type FeedbackForm struct {
	Title   string `form:"title" binding:"required,max=100"`
	Content string `form:"content" binding:"required"`
}
