// Package entity defines the typed view models passed to page templates and
// the standard JSON response shape.
package entity

import "portfolio/database/model"

// Msg is the standard API response for AJAX posts.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// FormErrors maps a field name to its validation message. An empty map
// means the input passed validation.
type FormErrors map[string]string

func (e FormErrors) Add(field, msg string) {
	e[field] = msg
}

func (e FormErrors) Valid() bool {
	return len(e) == 0
}

// HomePage aggregates everything the landing page renders.
type HomePage struct {
	Owner     *model.User
	Services  []*model.Service
	Projects  []*model.Project
	Documents []*model.Document
	News      []*model.News
}

// ProfileForm is the allow-listed set of fields a user may edit on their
// own profile.
type ProfileForm struct {
	Username      string `form:"username"`
	Password      string `form:"password"`
	FirstName     string `form:"firstName"`
	LastName      string `form:"lastName"`
	ContactNumber string `form:"contactNumber"`
	Email         string `form:"email"`
	Description   string `form:"description"`
}

// RegisterForm carries the registration input.
type RegisterForm struct {
	Username      string `form:"username"`
	Password      string `form:"password"`
	FirstName     string `form:"firstName"`
	LastName      string `form:"lastName"`
	ContactNumber string `form:"contactNumber"`
	Email         string `form:"email"`
	Description   string `form:"description"`
}

// ProjectForm is the allow-listed input for project create/edit.
type ProjectForm struct {
	Title             string `form:"title"`
	Description       string `form:"description"`
	ProjectCategoryId *int   `form:"projectCategoryId"`
}

// ServiceForm is the allow-listed input for service create/edit.
type ServiceForm struct {
	Title             string `form:"title"`
	Description       string `form:"description"`
	ServiceCategoryId *int   `form:"serviceCategoryId"`
}

// DocumentForm is the allow-listed input for document create/edit.
type DocumentForm struct {
	Title string `form:"title"`
}

// NewsForm is the allow-listed input for news create/edit. Date binds as
// 2006-01-02.
type NewsForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Date        string `form:"date"`
}

// CategoryForm is the input for both category types.
type CategoryForm struct {
	CategoryDesc string `form:"categoryDesc"`
}
