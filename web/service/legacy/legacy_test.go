package legacy

import (
	"path/filepath"
	"testing"

	"portfolio/database"
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

type recordingMailSender struct {
	to   string
	body string
}

func (m *recordingMailSender) Send(to, subject, body string) error {
	m.to = to
	m.body = body
	return nil
}

func legacyRegisterForm(username, email string) entity.RegisterForm {
	return entity.RegisterForm{
		Username:  username,
		Password:  "secret1",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     email,
	}
}

func TestLegacyRegisterStoresPlaintext(t *testing.T) {
	setup(t)

	auth := AuthService{}
	user, errs, err := auth.Register(legacyRegisterForm("alice", "alice@example.com"))
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Equal(t, "secret1", user.Password)

	assert.NotNil(t, auth.CheckUser("alice", "secret1"))
	assert.Nil(t, auth.CheckUser("alice", "wrong"))
}

func TestLegacyDuplicateMessagesNameTheField(t *testing.T) {
	setup(t)

	auth := AuthService{}
	_, errs, err := auth.Register(legacyRegisterForm("alice", "alice@example.com"))
	require.NoError(t, err)
	require.Nil(t, errs)

	_, errs, err = auth.Register(legacyRegisterForm("alice", "other@example.com"))
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Equal(t, "Username already taken.", errs["username"])

	_, errs, err = auth.Register(legacyRegisterForm("bob", "alice@example.com"))
	require.NoError(t, err)
	require.NotNil(t, errs)
	assert.Equal(t, "Email already registered.", errs["email"])
}

func TestLegacyForgotPasswordMailsStoredPassword(t *testing.T) {
	setup(t)

	mail := &recordingMailSender{}
	auth := AuthService{Mail: mail}
	_, _, err := auth.Register(legacyRegisterForm("alice", "alice@example.com"))
	require.NoError(t, err)

	require.NoError(t, auth.ForgotPassword("alice@example.com"))
	assert.Equal(t, "alice@example.com", mail.to)
	assert.Contains(t, mail.body, "secret1")
}

func TestLegacyUpdateProfileChangesPlaintextPassword(t *testing.T) {
	setup(t)

	auth := AuthService{}
	user, _, err := auth.Register(legacyRegisterForm("alice", "alice@example.com"))
	require.NoError(t, err)

	form := entity.ProfileForm{
		Username:  "alice",
		Password:  "newsecret",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     "alice@example.com",
	}
	updated, errs, err := auth.UpdateProfile(user.Id, form, "")
	require.NoError(t, err)
	require.Nil(t, errs)
	assert.Equal(t, "newsecret", updated.Password)
}
