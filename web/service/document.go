package service

import (
	"strings"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/entity"

	"gorm.io/gorm"
)

type DocumentService struct{}

func (s *DocumentService) GetDocuments() ([]*model.Document, error) {
	db := database.GetDB()
	var documents []*model.Document
	err := db.Model(model.Document{}).
		Preload("User").
		Order("id desc").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (s *DocumentService) GetDocument(id int) (*model.Document, error) {
	db := database.GetDB()
	document := &model.Document{}
	err := db.Preload("User").First(document, id).Error
	if err != nil {
		return nil, err
	}
	return document, nil
}

func (s *DocumentService) DocumentExists(id int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.Document{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *DocumentService) validate(form *entity.DocumentForm) entity.FormErrors {
	errs := entity.FormErrors{}
	if form.Title == "" || len(form.Title) > 50 {
		errs.Add("title", "Title is required and must be at most 50 characters.")
	}
	return errs
}

func (s *DocumentService) CreateDocument(actorId int, form entity.DocumentForm, coverImageUrl, documentUrl string) (*model.Document, entity.FormErrors, error) {
	if errs := s.validate(&form); !errs.Valid() {
		return nil, errs, nil
	}

	document := &model.Document{
		UserId:        actorId,
		Title:         form.Title,
		CoverImageUrl: coverImageUrl,
		DocumentUrl:   documentUrl,
	}
	if err := database.GetDB().Create(document).Error; err != nil {
		return nil, nil, err
	}
	return document, nil, nil
}

func (s *DocumentService) UpdateDocument(id int, form entity.DocumentForm, coverImageUrl, documentUrl string) (*model.Document, entity.FormErrors, error) {
	db := database.GetDB()

	document := &model.Document{}
	if err := db.First(document, id).Error; err != nil {
		return nil, nil, err
	}

	if errs := s.validate(&form); !errs.Valid() {
		return nil, errs, nil
	}

	updates := map[string]any{
		"title": form.Title,
	}
	if coverImageUrl != "" {
		updates["cover_image_url"] = coverImageUrl
	}
	if documentUrl != "" {
		updates["document_url"] = documentUrl
	}

	result := db.Model(model.Document{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	if err := db.First(document, id).Error; err != nil {
		return nil, nil, err
	}
	return document, nil, nil
}

func (s *DocumentService) DeleteDocument(id int) error {
	return database.GetDB().Delete(&model.Document{}, id).Error
}

func (s *DocumentService) SearchDocuments(term string) ([]*model.Document, error) {
	db := database.GetDB()
	query := db.Model(model.Document{}).
		Preload("User").
		Order("documents.id desc")

	if strings.TrimSpace(term) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
		query = query.
			Joins("LEFT JOIN users ON users.id = documents.user_id").
			Where("LOWER(documents.title) LIKE ? OR LOWER(users.username) LIKE ?", like, like)
	}

	var documents []*model.Document
	if err := query.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}
