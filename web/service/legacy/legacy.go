// Package legacy carries the insecure account flow of the original panel
// for behavioral compatibility: passwords are stored and compared in
// plaintext, duplicate-field messages reveal which field exists, and the
// forgot-password mail contains the stored password.
//
// It is only wired when PORTFOLIO_LEGACY_AUTH=true. New deployments should
// use the default flow in the service package.
package legacy

import (
	"fmt"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/logger"
	"portfolio/web/entity"
	"portfolio/web/service"

	"gorm.io/gorm"
)

type AuthService struct {
	Mail service.MailSender
}

func (s *AuthService) sender() service.MailSender {
	if s.Mail != nil {
		return s.Mail
	}
	return service.LogMailSender{}
}

// CheckUser matches username and password by exact plaintext comparison.
func (s *AuthService) CheckUser(username, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ? AND password = ?", username, password).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("legacy check user err:", err)
		return nil
	}
	return user
}

func (s *AuthService) validate(form *entity.ProfileForm, excludeId int, errs entity.FormErrors) error {
	db := database.GetDB()

	if form.Username == "" || len(form.Username) > 20 {
		errs.Add("username", "Username is required and must be at most 20 characters.")
	} else {
		var count int64
		err := db.Model(model.User{}).
			Where("username = ? AND id != ?", form.Username, excludeId).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			errs.Add("username", "Username already taken.")
		}
	}

	if form.Email == "" || len(form.Email) > 50 {
		errs.Add("email", "Email is required and must be at most 50 characters.")
	} else {
		var count int64
		err := db.Model(model.User{}).
			Where("email = ? AND id != ?", form.Email, excludeId).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			errs.Add("email", "Email already registered.")
		}
	}

	if form.FirstName == "" || len(form.FirstName) > 50 {
		errs.Add("firstName", "First name is required and must be at most 50 characters.")
	}
	if form.LastName == "" || len(form.LastName) > 50 {
		errs.Add("lastName", "Last name is required and must be at most 50 characters.")
	}
	if len(form.ContactNumber) > 50 {
		errs.Add("contactNumber", "Contact number must be at most 50 characters.")
	}
	if len(form.Description) > 500 {
		errs.Add("description", "Description must be at most 500 characters.")
	}
	return nil
}

// Register stores the password as given.
func (s *AuthService) Register(form entity.RegisterForm) (*model.User, entity.FormErrors, error) {
	errs := entity.FormErrors{}
	profile := entity.ProfileForm(form)
	if err := s.validate(&profile, 0, errs); err != nil {
		return nil, nil, err
	}
	if len(form.Password) < 6 {
		errs.Add("password", "Password must be at least 6 characters long.")
	} else if len(form.Password) > 20 {
		errs.Add("password", "Password must be at most 20 characters long.")
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	user := &model.User{
		Username:      form.Username,
		Password:      form.Password,
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		ContactNumber: form.ContactNumber,
		Email:         form.Email,
		Description:   form.Description,
	}
	if err := database.GetDB().Create(user).Error; err != nil {
		return nil, nil, err
	}
	return user, nil, nil
}

// UpdateProfile overwrites the acting user's fields, password included,
// without hashing.
func (s *AuthService) UpdateProfile(actorId int, form entity.ProfileForm, coverImageUrl string) (*model.User, entity.FormErrors, error) {
	db := database.GetDB()

	user := &model.User{}
	if err := db.First(user, actorId).Error; err != nil {
		return nil, nil, err
	}

	errs := entity.FormErrors{}
	if err := s.validate(&form, actorId, errs); err != nil {
		return nil, nil, err
	}
	if form.Password != "" && (len(form.Password) < 6 || len(form.Password) > 20) {
		errs.Add("password", "Password must be between 6 and 20 characters long.")
	}
	if !errs.Valid() {
		return nil, errs, nil
	}

	updates := map[string]any{
		"username":       form.Username,
		"first_name":     form.FirstName,
		"last_name":      form.LastName,
		"contact_number": form.ContactNumber,
		"email":          form.Email,
		"description":    form.Description,
	}
	if form.Password != "" {
		updates["password"] = form.Password
	}
	if coverImageUrl != "" {
		updates["cover_image_url"] = coverImageUrl
	}

	result := db.Model(model.User{}).Where("id = ?", actorId).Updates(updates)
	if result.Error != nil {
		return nil, nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil, gorm.ErrRecordNotFound
	}

	if err := db.First(user, actorId).Error; err != nil {
		return nil, nil, err
	}
	return user, nil, nil
}

// ForgotPassword mails the stored plaintext password back to the user.
func (s *AuthService) ForgotPassword(email string) error {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).Where("email = ?", email).First(user).Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		return err
	}

	body := fmt.Sprintf("Hello %s,\n\nYour password is: %s", user.DisplayName(), user.Password)
	return s.sender().Send(user.Email, "Password reminder", body)
}
