package service

import (
	"path/filepath"
	"strings"
	"testing"

	"portfolio/database"
	"portfolio/database/model"
	"portfolio/util/crypto"
	"portfolio/web/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		database.CloseDB()
	})
}

// recordingMailSender captures outgoing mail for assertions.
type recordingMailSender struct {
	to      string
	subject string
	body    string
}

func (m *recordingMailSender) Send(to, subject, body string) error {
	m.to = to
	m.subject = subject
	m.body = body
	return nil
}

func registerForm(username, email string) entity.RegisterForm {
	return entity.RegisterForm{
		Username:  username,
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     email,
	}
}

func TestRegisterAndCheckUser(t *testing.T) {
	setup(t)

	userService := UserService{}
	user, errs, err := userService.Register(registerForm("alice", "alice@example.com"))
	require.NoError(t, err)
	require.Nil(t, errs)
	require.NotNil(t, user)
	assert.Greater(t, user.Id, 0)

	// The stored password is a hash, never the raw input.
	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"))
	assert.True(t, crypto.CheckPasswordHash(user.Password, "secret1"))

	assert.NotNil(t, userService.CheckUser("alice", "secret1"))
	assert.Nil(t, userService.CheckUser("alice", "wrong"))
	assert.Nil(t, userService.CheckUser("nobody", "secret1"))
}

func TestRegisterPasswordLength(t *testing.T) {
	setup(t)

	userService := UserService{}

	form := registerForm("alice", "alice@example.com")
	form.Password = "five5"
	_, errs, err := userService.Register(form)
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "password")

	form.Password = "sixsix"
	user, errs, err := userService.Register(form)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.NotNil(t, user)
}

func TestRegisterDuplicateIsGeneric(t *testing.T) {
	setup(t)

	userService := UserService{}
	_, errs, err := userService.Register(registerForm("alice", "alice@example.com"))
	require.NoError(t, err)
	require.Nil(t, errs)

	// Same username, different email.
	_, errs, err = userService.Register(registerForm("alice", "other@example.com"))
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Equal(t, "Username or email is already in use.", errs["account"])

	// Different username, same email. The message must not say which
	// field collided.
	_, errs, err = userService.Register(registerForm("bob", "alice@example.com"))
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Equal(t, "Username or email is already in use.", errs["account"])

	var count int64
	database.GetDB().Model(model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProfileKeepsPasswordWhenBlank(t *testing.T) {
	setup(t)

	userService := UserService{}
	user, _, err := userService.Register(registerForm("alice", "alice@example.com"))
	require.NoError(t, err)

	form := entity.ProfileForm{
		Username:  "alice",
		FirstName: "Alicia",
		LastName:  "Nguyen",
		Email:     "alice@example.com",
	}
	updated, errs, err := userService.UpdateProfile(user.Id, form, "")
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, user.Password, updated.Password)

	form.Password = "newsecret"
	updated, errs, err = userService.UpdateProfile(user.Id, form, "")
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.NotEqual(t, user.Password, updated.Password)
	assert.True(t, crypto.CheckPasswordHash(updated.Password, "newsecret"))
}

func TestUpdateProfileDeletedUser(t *testing.T) {
	setup(t)

	userService := UserService{}
	_, _, err := userService.Register(registerForm("alice", "alice@example.com"))
	require.NoError(t, err)

	form := entity.ProfileForm{
		Username:  "ghost",
		FirstName: "G",
		LastName:  "Host",
		Email:     "ghost@example.com",
	}
	_, _, err = userService.UpdateProfile(999, form, "")
	assert.True(t, database.IsNotFound(err))
}

func TestDeleteAccountCascades(t *testing.T) {
	setup(t)

	userService := UserService{}
	user, _, err := userService.Register(registerForm("alice", "alice@example.com"))
	require.NoError(t, err)

	projectService := ProjectService{}
	_, errs, err := projectService.CreateProject(user.Id, entity.ProjectForm{
		Title:       "Site relaunch",
		Description: "Full rebuild of the public site.",
	}, "")
	require.NoError(t, err)
	require.Nil(t, errs)

	newsService := NewsService{}
	_, errs, err = newsService.CreateNews(user.Id, entity.NewsForm{
		Title:       "Launched",
		Description: "The new site is live.",
		Date:        "2026-01-15",
	}, "")
	require.NoError(t, err)
	require.Nil(t, errs)

	require.NoError(t, userService.DeleteAccount(user.Id))

	db := database.GetDB()
	var count int64
	db.Model(model.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(model.Project{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(model.News{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestForgotPassword(t *testing.T) {
	setup(t)

	mail := &recordingMailSender{}
	userService := UserService{Mail: mail}
	user, _, err := userService.Register(registerForm("alice", "alice@example.com"))
	require.NoError(t, err)

	require.NoError(t, userService.ForgotPassword("alice@example.com"))
	assert.Equal(t, "alice@example.com", mail.to)
	assert.NotContains(t, mail.body, "secret1")

	// The old password no longer works, the mailed one does.
	stored, err := userService.GetUser(user.Id)
	require.NoError(t, err)
	assert.False(t, crypto.CheckPasswordHash(stored.Password, "secret1"))

	// Unknown addresses are silently accepted and send nothing.
	mail.to = ""
	require.NoError(t, userService.ForgotPassword("nobody@example.com"))
	assert.Empty(t, mail.to)
}
