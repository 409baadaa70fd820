// Package session stores the authenticated identity in the cookie session.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

// Claims is the identity carried by the session cookie. It is the only
// source of the acting user's id for protected actions.
type Claims struct {
	UserId      int
	DisplayName string
	Email       string
}

func init() {
	gob.Register(Claims{})
}

// cookiePath keeps rewritten cookies on the same path the store was
// registered with.
func cookiePath(c *gin.Context) string {
	if p := c.GetString("base_path"); p != "" {
		return p
	}
	return "/"
}

func SetLoginUser(c *gin.Context, claims Claims) error {
	s := sessions.Default(c)
	s.Set(loginUser, claims)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     cookiePath(c),
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *Claims {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if claims, ok := obj.(Claims); ok {
			return &claims
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   cookiePath(c),
		MaxAge: -1,
	})
	return s.Save()
}
