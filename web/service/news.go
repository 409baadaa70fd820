package service

import (
	"strings"
	"time"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/web/entity"

	"gorm.io/gorm"
)

const newsDateLayout = "2006-01-02"

type NewsService struct{}

// GetNews returns all news entries, most recent date first.
func (s *NewsService) GetNews() ([]*model.News, error) {
	db := database.GetDB()
	var news []*model.News
	err := db.Model(model.News{}).
		Preload("User").
		Order("date desc").
		Find(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) GetNewsItem(id int) (*model.News, error) {
	db := database.GetDB()
	news := &model.News{}
	err := db.Preload("User").First(news, id).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

func (s *NewsService) NewsExists(id int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.News{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *NewsService) validate(form *entity.NewsForm) (time.Time, entity.FormErrors) {
	errs := entity.FormErrors{}
	if form.Title == "" || len(form.Title) > 50 {
		errs.Add("title", "Title is required and must be at most 50 characters.")
	}
	if form.Description == "" || len(form.Description) > 500 {
		errs.Add("description", "Description is required and must be at most 500 characters.")
	}
	date, err := time.Parse(newsDateLayout, form.Date)
	if err != nil {
		errs.Add("date", "Date must be in YYYY-MM-DD format.")
	}
	return date, errs
}

func (s *NewsService) CreateNews(actorId int, form entity.NewsForm, coverImageUrl string) (*model.News, entity.FormErrors, error) {
	date, errs := s.validate(&form)
	if !errs.Valid() {
		return nil, errs, nil
	}

	news := &model.News{
		UserId:        actorId,
		Title:         form.Title,
		Description:   form.Description,
		Date:          date,
		CoverImageUrl: coverImageUrl,
	}
	if err := database.GetDB().Create(news).Error; err != nil {
		return nil, nil, err
	}
	return news, nil, nil
}

func (s *NewsService) UpdateNews(id int, form entity.NewsForm, coverImageUrl string) (*model.News, entity.FormErrors, error) {
	db := database.GetDB()

	news := &model.News{}
	if err := db.First(news, id).Error; err != nil {
		return nil, nil, err
	}

	date, errs := s.validate(&form)
	if !errs.Valid() {
		return nil, errs, nil
	}

	updates := map[string]any{
		"title":       form.Title,
		"description": form.Description,
		"date":        date,
	}
	if coverImageUrl != "" {
		updates["cover_image_url"] = coverImageUrl
	}

	result := db.Model(model.News{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	if err := db.First(news, id).Error; err != nil {
		return nil, nil, err
	}
	return news, nil, nil
}

func (s *NewsService) DeleteNews(id int) error {
	return database.GetDB().Delete(&model.News{}, id).Error
}

func (s *NewsService) SearchNews(term string) ([]*model.News, error) {
	db := database.GetDB()
	query := db.Model(model.News{}).
		Preload("User").
		Order("date desc")

	if strings.TrimSpace(term) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var news []*model.News
	if err := query.Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}
