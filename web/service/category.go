package service

import (
	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/entity"

	"gorm.io/gorm"
)

func validateCategory(form *entity.CategoryForm) entity.FormErrors {
	errs := entity.FormErrors{}
	if form.CategoryDesc == "" || len(form.CategoryDesc) > 50 {
		errs.Add("categoryDesc", "Description is required and must be at most 50 characters.")
	}
	return errs
}

type ProjectCategoryService struct{}

func (s *ProjectCategoryService) GetCategories() ([]*model.ProjectCategory, error) {
	db := database.GetDB()
	var categories []*model.ProjectCategory
	err := db.Model(model.ProjectCategory{}).Order("id asc").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *ProjectCategoryService) GetCategory(id int) (*model.ProjectCategory, error) {
	db := database.GetDB()
	category := &model.ProjectCategory{}
	err := db.First(category, id).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ProjectCategoryService) CreateCategory(form entity.CategoryForm) (*model.ProjectCategory, entity.FormErrors, error) {
	if errs := validateCategory(&form); !errs.Valid() {
		return nil, errs, nil
	}
	category := &model.ProjectCategory{CategoryDesc: form.CategoryDesc}
	if err := database.GetDB().Create(category).Error; err != nil {
		return nil, nil, err
	}
	return category, nil, nil
}

func (s *ProjectCategoryService) UpdateCategory(id int, form entity.CategoryForm) (*model.ProjectCategory, entity.FormErrors, error) {
	db := database.GetDB()

	category := &model.ProjectCategory{}
	if err := db.First(category, id).Error; err != nil {
		return nil, nil, err
	}

	if errs := validateCategory(&form); !errs.Valid() {
		return nil, errs, nil
	}

	result := db.Model(model.ProjectCategory{}).Where("id = ?", id).Update("category_desc", form.CategoryDesc)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	category.CategoryDesc = form.CategoryDesc
	return category, nil, nil
}

// DeleteCategory detaches referencing projects before removing the
// category, so their rows survive with a null category id.
func (s *ProjectCategoryService) DeleteCategory(id int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(model.Project{}).
			Where("project_category_id = ?", id).
			Update("project_category_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&model.ProjectCategory{}, id).Error
	})
}

type ServiceCategoryService struct{}

func (s *ServiceCategoryService) GetCategories() ([]*model.ServiceCategory, error) {
	db := database.GetDB()
	var categories []*model.ServiceCategory
	err := db.Model(model.ServiceCategory{}).Order("id asc").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *ServiceCategoryService) GetCategory(id int) (*model.ServiceCategory, error) {
	db := database.GetDB()
	category := &model.ServiceCategory{}
	err := db.First(category, id).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ServiceCategoryService) CreateCategory(form entity.CategoryForm) (*model.ServiceCategory, entity.FormErrors, error) {
	if errs := validateCategory(&form); !errs.Valid() {
		return nil, errs, nil
	}
	category := &model.ServiceCategory{CategoryDesc: form.CategoryDesc}
	if err := database.GetDB().Create(category).Error; err != nil {
		return nil, nil, err
	}
	return category, nil, nil
}

func (s *ServiceCategoryService) UpdateCategory(id int, form entity.CategoryForm) (*model.ServiceCategory, entity.FormErrors, error) {
	db := database.GetDB()

	category := &model.ServiceCategory{}
	if err := db.First(category, id).Error; err != nil {
		return nil, nil, err
	}

	if errs := validateCategory(&form); !errs.Valid() {
		return nil, errs, nil
	}

	result := db.Model(model.ServiceCategory{}).Where("id = ?", id).Update("category_desc", form.CategoryDesc)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	category.CategoryDesc = form.CategoryDesc
	return category, nil, nil
}

// DeleteCategory nulls the category reference on the services that point at
// it and then removes the category row.
func (s *ServiceCategoryService) DeleteCategory(id int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(model.Service{}).
			Where("service_category_id = ?", id).
			Update("service_category_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&model.ServiceCategory{}, id).Error
	})
}
