// Package model defines the persisted entities of the portfolio site.
//
// Relationships are id references resolved through explicit Preloads;
// entities carry child-to-parent pointers only, never owner collections.
package model

import "time"

// User owns every other content row. Password holds a bcrypt hash, or the
// raw password when the legacy auth flow is enabled.
type User struct {
	Id            int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Username      string `json:"username" form:"username" gorm:"size:20;uniqueIndex"`
	Password      string `json:"-" form:"password" gorm:"size:100"`
	FirstName     string `json:"firstName" form:"firstName" gorm:"size:50"`
	LastName      string `json:"lastName" form:"lastName" gorm:"size:50"`
	ContactNumber string `json:"contactNumber" form:"contactNumber" gorm:"size:50"`
	Email         string `json:"email" form:"email" gorm:"size:50;uniqueIndex"`
	Description   string `json:"description" form:"description" gorm:"size:500"`
	CoverImageUrl string `json:"coverImageUrl" gorm:"size:250"`
}

// DisplayName is the identity claim stored in the session cookie.
func (u *User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	return name
}

type ProjectCategory struct {
	Id           int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	CategoryDesc string `json:"categoryDesc" form:"categoryDesc" gorm:"size:50"`
}

type ServiceCategory struct {
	Id           int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	CategoryDesc string `json:"categoryDesc" form:"categoryDesc" gorm:"size:50"`
}

type Project struct {
	Id                int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	UserId            int    `json:"userId" gorm:"not null;index"`
	ProjectCategoryId *int   `json:"projectCategoryId" form:"projectCategoryId"`
	Title             string `json:"title" form:"title" gorm:"size:50"`
	Description       string `json:"description" form:"description" gorm:"size:500"`
	CoverImageUrl     string `json:"coverImageUrl" gorm:"size:250"`

	User            *User            `json:"user,omitempty" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	ProjectCategory *ProjectCategory `json:"projectCategory,omitempty" gorm:"foreignKey:ProjectCategoryId;constraint:OnDelete:SET NULL"`
}

// CategoryId returns the category reference, or 0 when uncategorized.
func (p *Project) CategoryId() int {
	if p.ProjectCategoryId == nil {
		return 0
	}
	return *p.ProjectCategoryId
}

type Service struct {
	Id                int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	UserId            int    `json:"userId" gorm:"not null;index"`
	ServiceCategoryId *int   `json:"serviceCategoryId" form:"serviceCategoryId"`
	Title             string `json:"title" form:"title" gorm:"size:50"`
	Description       string `json:"description" form:"description" gorm:"size:500"`
	CoverImageUrl     string `json:"coverImageUrl" gorm:"size:250"`

	User            *User            `json:"user,omitempty" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	ServiceCategory *ServiceCategory `json:"serviceCategory,omitempty" gorm:"foreignKey:ServiceCategoryId;constraint:OnDelete:SET NULL"`
}

// CategoryId returns the category reference, or 0 when uncategorized.
func (s *Service) CategoryId() int {
	if s.ServiceCategoryId == nil {
		return 0
	}
	return *s.ServiceCategoryId
}

type Document struct {
	Id            int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	UserId        int    `json:"userId" gorm:"not null;index"`
	Title         string `json:"title" form:"title" gorm:"size:50"`
	CoverImageUrl string `json:"coverImageUrl" gorm:"size:250"`
	DocumentUrl   string `json:"documentUrl" gorm:"size:250"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

type News struct {
	Id            int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	UserId        int       `json:"userId" gorm:"not null;index"`
	Title         string    `json:"title" form:"title" gorm:"size:50"`
	Description   string    `json:"description" form:"description" gorm:"size:500"`
	Date          time.Time `json:"date" form:"date" time_format:"2006-01-02"`
	CoverImageUrl string    `json:"coverImageUrl" gorm:"size:250"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}
