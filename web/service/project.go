// Package service provides the business logic of the portfolio panel: the
// persistence gateway per entity, the account flow and the upload helper.
package service

import (
	"strings"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/entity"

	"gorm.io/gorm"
)

type ProjectService struct{}

// GetProjects returns all projects newest first, with user and category
// attached for display.
func (s *ProjectService) GetProjects() ([]*model.Project, error) {
	db := database.GetDB()
	var projects []*model.Project
	err := db.Model(model.Project{}).
		Preload("User").
		Preload("ProjectCategory").
		Order("id desc").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) GetProject(id int) (*model.Project, error) {
	db := database.GetDB()
	project := &model.Project{}
	err := db.Preload("User").Preload("ProjectCategory").First(project, id).Error
	if err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ProjectExists(id int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *ProjectService) validate(form *entity.ProjectForm) (entity.FormErrors, error) {
	// The form's "None" option binds as a pointer to zero.
	if form.ProjectCategoryId != nil && *form.ProjectCategoryId == 0 {
		form.ProjectCategoryId = nil
	}

	errs := entity.FormErrors{}
	if form.Title == "" || len(form.Title) > 50 {
		errs.Add("title", "Title is required and must be at most 50 characters.")
	}
	if form.Description == "" || len(form.Description) > 500 {
		errs.Add("description", "Description is required and must be at most 500 characters.")
	}
	if form.ProjectCategoryId != nil {
		db := database.GetDB()
		var count int64
		if err := db.Model(model.ProjectCategory{}).Where("id = ?", *form.ProjectCategoryId).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			errs.Add("projectCategoryId", "Unknown project category.")
		}
	}
	return errs, nil
}

// CreateProject persists a new project owned by the acting user.
func (s *ProjectService) CreateProject(actorId int, form entity.ProjectForm, coverImageUrl string) (*model.Project, entity.FormErrors, error) {
	errs, err := s.validate(&form)
	if err != nil {
		return nil, nil, err
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	project := &model.Project{
		UserId:            actorId,
		ProjectCategoryId: form.ProjectCategoryId,
		Title:             form.Title,
		Description:       form.Description,
		CoverImageUrl:     coverImageUrl,
	}
	if err := database.GetDB().Create(project).Error; err != nil {
		return nil, nil, err
	}
	return project, nil, nil
}

// UpdateProject overwrites the editable fields of an existing project. The
// owner never changes. A vanished row surfaces as record-not-found.
func (s *ProjectService) UpdateProject(id int, form entity.ProjectForm, coverImageUrl string) (*model.Project, entity.FormErrors, error) {
	db := database.GetDB()

	project := &model.Project{}
	if err := db.First(project, id).Error; err != nil {
		return nil, nil, err
	}

	errs, err := s.validate(&form)
	if err != nil {
		return nil, nil, err
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	updates := map[string]any{
		"title":               form.Title,
		"description":         form.Description,
		"project_category_id": form.ProjectCategoryId,
	}
	if coverImageUrl != "" {
		updates["cover_image_url"] = coverImageUrl
	}

	result := db.Model(model.Project{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	if err := db.First(project, id).Error; err != nil {
		return nil, nil, err
	}
	return project, nil, nil
}

func (s *ProjectService) DeleteProject(id int) error {
	return database.GetDB().Delete(&model.Project{}, id).Error
}

// SearchProjects filters by case-insensitive substring over title,
// description, category and owner name. A blank term returns everything.
func (s *ProjectService) SearchProjects(term string) ([]*model.Project, error) {
	db := database.GetDB()
	query := db.Model(model.Project{}).
		Preload("User").
		Preload("ProjectCategory").
		Order("projects.id desc")

	if strings.TrimSpace(term) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
		query = query.
			Joins("LEFT JOIN users ON users.id = projects.user_id").
			Joins("LEFT JOIN project_categories ON project_categories.id = projects.project_category_id").
			Where(
				"LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ? OR LOWER(project_categories.category_desc) LIKE ? OR LOWER(users.username) LIKE ?",
				like, like, like, like,
			)
	}

	var projects []*model.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
