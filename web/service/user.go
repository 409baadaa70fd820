package service

import (
	"fmt"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/logger"
	"portfolio/util/crypto"
	"portfolio/util/random"
	"portfolio/web/entity"

	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 20
	maxUsernameLen = 20
)

// UserService implements the account flow with hashed credentials and
// generic validation messages. The behavior-faithful plaintext flow lives
// in the legacy package.
type UserService struct {
	Mail MailSender
}

func (s *UserService) sender() MailSender {
	if s.Mail != nil {
		return s.Mail
	}
	return LogMailSender{}
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.First(user, id).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsers() ([]*model.User, error) {
	db := database.GetDB()
	var users []*model.User
	err := db.Model(model.User{}).Order("id asc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetFirstUser returns the portfolio owner shown on the landing page.
func (s *UserService) GetFirstUser() (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser returns the matching user or nil. Lookup and password failures
// are indistinguishable to the caller.
func (s *UserService) CheckUser(username, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

func (s *UserService) usernameTaken(username string, excludeId int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).
		Where("username = ? AND id != ?", username, excludeId).
		Count(&count).Error
	return count > 0, err
}

func (s *UserService) emailTaken(email string, excludeId int) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).
		Where("email = ? AND id != ?", email, excludeId).
		Count(&count).Error
	return count > 0, err
}

func validateProfileFields(form *entity.ProfileForm, errs entity.FormErrors) {
	if form.Username == "" || len(form.Username) > maxUsernameLen {
		errs.Add("username", fmt.Sprintf("Username is required and must be at most %d characters.", maxUsernameLen))
	}
	if form.FirstName == "" || len(form.FirstName) > 50 {
		errs.Add("firstName", "First name is required and must be at most 50 characters.")
	}
	if form.LastName == "" || len(form.LastName) > 50 {
		errs.Add("lastName", "Last name is required and must be at most 50 characters.")
	}
	if form.Email == "" || len(form.Email) > 50 {
		errs.Add("email", "Email is required and must be at most 50 characters.")
	}
	if len(form.ContactNumber) > 50 {
		errs.Add("contactNumber", "Contact number must be at most 50 characters.")
	}
	if len(form.Description) > 500 {
		errs.Add("description", "Description must be at most 500 characters.")
	}
}

// Register validates the input, creates the user and returns the stored
// row. Duplicate username and duplicate email produce the same message so
// the form does not reveal which one exists.
func (s *UserService) Register(form entity.RegisterForm) (*model.User, entity.FormErrors, error) {
	errs := entity.FormErrors{}
	profile := entity.ProfileForm(form)
	validateProfileFields(&profile, errs)

	if len(form.Password) < minPasswordLen {
		errs.Add("password", fmt.Sprintf("Password must be at least %d characters long.", minPasswordLen))
	} else if len(form.Password) > maxPasswordLen {
		errs.Add("password", fmt.Sprintf("Password must be at most %d characters long.", maxPasswordLen))
	}

	if form.Username != "" {
		taken, err := s.usernameTaken(form.Username, 0)
		if err != nil {
			return nil, nil, err
		}
		inUse := taken
		if !inUse && form.Email != "" {
			if inUse, err = s.emailTaken(form.Email, 0); err != nil {
				return nil, nil, err
			}
		}
		if inUse {
			errs.Add("account", "Username or email is already in use.")
		}
	}

	if !errs.Valid() {
		return nil, errs, nil
	}

	hash, err := crypto.HashPasswordAsBcrypt(form.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Username:      form.Username,
		Password:      hash,
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		ContactNumber: form.ContactNumber,
		Email:         form.Email,
		Description:   form.Description,
	}
	if err := database.GetDB().Create(user).Error; err != nil {
		return nil, nil, err
	}
	logger.Infof("registered user %s", user.Username)
	return user, nil, nil
}

// UpdateProfile overwrites the acting user's editable fields. A blank
// password keeps the current one.
func (s *UserService) UpdateProfile(actorId int, form entity.ProfileForm, coverImageUrl string) (*model.User, entity.FormErrors, error) {
	db := database.GetDB()

	user := &model.User{}
	if err := db.First(user, actorId).Error; err != nil {
		return nil, nil, err
	}

	errs := entity.FormErrors{}
	validateProfileFields(&form, errs)
	if form.Password != "" && (len(form.Password) < minPasswordLen || len(form.Password) > maxPasswordLen) {
		errs.Add("password", fmt.Sprintf("Password must be between %d and %d characters long.", minPasswordLen, maxPasswordLen))
	}

	if errs.Valid() {
		taken, err := s.usernameTaken(form.Username, actorId)
		if err != nil {
			return nil, nil, err
		}
		inUse := taken
		if !inUse {
			if inUse, err = s.emailTaken(form.Email, actorId); err != nil {
				return nil, nil, err
			}
		}
		if inUse {
			errs.Add("account", "Username or email is already in use.")
		}
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
		hash, err := crypto.HashPasswordAsBcrypt(form.Password)
		if err != nil {
			return nil, nil, err
		}
		updates["password"] = hash
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

// DeleteAccount removes the acting user and cascades to every owned row.
func (s *UserService) DeleteAccount(actorId int) error {
	db := database.GetDB()

	user := &model.User{}
	if err := db.First(user, actorId).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&model.Document{},
			&model.Project{},
			&model.Service{},
			&model.News{},
		}
		for _, m := range owned {
			if err := tx.Where("user_id = ?", actorId).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.User{}, actorId).Error
	})
}

// ForgotPassword issues a random temporary password, stores its hash and
// mails it to the account address. Unknown addresses are not reported to
// the caller.
func (s *UserService) ForgotPassword(email string) error {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).Where("email = ?", email).First(user).Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		return err
	}

	tempPassword := random.Seq(10)
	hash, err := crypto.HashPasswordAsBcrypt(tempPassword)
	if err != nil {
		return err
	}
	if err := db.Model(model.User{}).Where("id = ?", user.Id).Update("password", hash).Error; err != nil {
		return err
	}

	body := fmt.Sprintf("Hello %s,\n\nYour temporary password is: %s\nPlease change it after signing in.", user.DisplayName(), tempPassword)
	return s.sender().Send(user.Email, "Password reset", body)
}
