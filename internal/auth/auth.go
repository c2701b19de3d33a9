// Package auth gates the admin pages behind a cookie session and serves login/logout.
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopadmin/internal/models"
	"shopadmin/internal/store"
	"shopadmin/internal/views"
)

const (
	sessionUserID   = "user_id"
	sessionUsername = "user_username"

	// CurrentUserKey is the gin context key holding the logged-in username.
	CurrentUserKey = "currentUser"

	LoginPath  = "/login"
	LogoutPath = "/logout"
)

// Users looks up accounts by username.
type Users interface {
	ByUsername(ctx context.Context, username string) (models.User, error)
}

type Auth struct {
	users    Users
	homePath string
	log      *zap.Logger
}

// New returns an Auth that sends logged-in users to homePath by default.
func New(users Users, homePath string, log *zap.Logger) *Auth {
	return &Auth{users: users, homePath: homePath, log: log}
}

// CurrentUser is the username set by Gate, or "".
func CurrentUser(c *gin.Context) string {
	return c.GetString(CurrentUserKey)
}

// Gate lets a request through only with a logged-in session. Browsers are
// redirected to the login page; DELETE (issued from scripts) gets a 401 JSON body.
func (a *Auth) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		username, _ := sess.Get(sessionUsername).(string)
		if sess.Get(sessionUserID) == nil || username == "" {
			if c.Request.Method == http.MethodDelete {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"result": false, "error": "login required"})
				return
			}
			c.Redirect(http.StatusSeeOther, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Set(CurrentUserKey, username)
		c.Next()
	}
}

// Register mounts the login and logout routes.
func (a *Auth) Register(r gin.IRouter) {
	r.GET(LoginPath, a.loginPage)
	r.POST(LoginPath, a.login)
	r.POST(LogoutPath, a.logout)
}

func (a *Auth) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", a.loginData(c.Query("next"), "", ""))
}

func (a *Auth) login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	pw := c.PostForm("password")
	next := c.PostForm("next")
	if username == "" || pw == "" {
		c.HTML(http.StatusBadRequest, "login.tmpl", a.loginData(next, username, "Fill all fields"))
		return
	}

	u, err := a.users.ByUsername(c.Request.Context(), username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.HTML(http.StatusUnauthorized, "login.tmpl", a.loginData(next, username, "Wrong username or password"))
		return
	case err != nil:
		a.log.Error("login lookup failed", zap.String("username", username), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.tmpl", a.loginData(next, username, "Login is unavailable, try again later"))
		return
	}
	if !models.CheckPassword(u.PasswordHash, pw) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", a.loginData(next, username, "Wrong username or password"))
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionUserID, u.ID)
	sess.Set(sessionUsername, u.Username)
	if err := sess.Save(); err != nil {
		a.log.Error("save session", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.tmpl", a.loginData(next, username, "Login is unavailable, try again later"))
		return
	}
	a.log.Info("user logged in", zap.String("username", u.Username))
	c.Redirect(http.StatusSeeOther, a.safeNext(next))
}

func (a *Auth) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, LoginPath)
}

func (a *Auth) loginData(next, username, msg string) views.ViewData {
	return views.ViewData{
		"Title":    "Log in",
		"ListPath": a.homePath,
		"UserName": "",
		"Next":     next,
		"Username": username,
		"Error":    msg,
	}
}

// safeNext only follows local paths, never another host.
func (a *Auth) safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return a.homePath
	}
	return next
}
