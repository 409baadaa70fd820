package service

import (
	"strings"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/entity"

	"gorm.io/gorm"
)

// ServiceService manages the offered-services catalogue.
type ServiceService struct{}

func (s *ServiceService) GetServices() ([]*model.Service, error) {
	db := database.GetDB()
	var services []*model.Service
	err := db.Model(model.Service{}).
		Preload("User").
		Preload("ServiceCategory").
		Order("id desc").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (s *ServiceService) GetService(id int) (*model.Service, error) {
	db := database.GetDB()
	service := &model.Service{}
	err := db.Preload("User").Preload("ServiceCategory").First(service, id).Error
	if err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceService) ServiceExists(id int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.Service{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *ServiceService) validate(form *entity.ServiceForm) (entity.FormErrors, error) {
	// The form's "None" option binds as a pointer to zero.
	if form.ServiceCategoryId != nil && *form.ServiceCategoryId == 0 {
		form.ServiceCategoryId = nil
	}

	errs := entity.FormErrors{}
	if form.Title == "" || len(form.Title) > 50 {
		errs.Add("title", "Title is required and must be at most 50 characters.")
	}
	if form.Description == "" || len(form.Description) > 500 {
		errs.Add("description", "Description is required and must be at most 500 characters.")
	}
	if form.ServiceCategoryId != nil {
		db := database.GetDB()
		var count int64
		if err := db.Model(model.ServiceCategory{}).Where("id = ?", *form.ServiceCategoryId).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			errs.Add("serviceCategoryId", "Unknown service category.")
		}
	}
	return errs, nil
}

func (s *ServiceService) CreateService(actorId int, form entity.ServiceForm, coverImageUrl string) (*model.Service, entity.FormErrors, error) {
	errs, err := s.validate(&form)
	if err != nil {
		return nil, nil, err
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	service := &model.Service{
		UserId:            actorId,
		ServiceCategoryId: form.ServiceCategoryId,
		Title:             form.Title,
		Description:       form.Description,
		CoverImageUrl:     coverImageUrl,
	}
	if err := database.GetDB().Create(service).Error; err != nil {
		return nil, nil, err
	}
	return service, nil, nil
}

func (s *ServiceService) UpdateService(id int, form entity.ServiceForm, coverImageUrl string) (*model.Service, entity.FormErrors, error) {
	db := database.GetDB()

	service := &model.Service{}
	if err := db.First(service, id).Error; err != nil {
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
		"service_category_id": form.ServiceCategoryId,
	}
	if coverImageUrl != "" {
		updates["cover_image_url"] = coverImageUrl
	}

	result := db.Model(model.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	if err := db.First(service, id).Error; err != nil {
		return nil, nil, err
	}
	return service, nil, nil
}

func (s *ServiceService) DeleteService(id int) error {
	return database.GetDB().Delete(&model.Service{}, id).Error
}

func (s *ServiceService) SearchServices(term string) ([]*model.Service, error) {
	db := database.GetDB()
	query := db.Model(model.Service{}).
		Preload("User").
		Preload("ServiceCategory").
		Order("services.id desc")

	if strings.TrimSpace(term) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
		query = query.
			Joins("LEFT JOIN users ON users.id = services.user_id").
			Joins("LEFT JOIN service_categories ON service_categories.id = services.service_category_id").
			Where(
				"LOWER(services.title) LIKE ? OR LOWER(services.description) LIKE ? OR LOWER(service_categories.category_desc) LIKE ? OR LOWER(users.username) LIKE ?",
				like, like, like, like,
			)
	}

	var services []*model.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
