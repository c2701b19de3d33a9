// Package server assembles the gin engine: middleware, sessions, views and routes.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shopadmin/internal/auth"
	"shopadmin/internal/config"
	"shopadmin/internal/store"
	"shopadmin/internal/upload"
	"shopadmin/internal/views"
	"shopadmin/internal/web"
)

const sessionName = "admin_session"

// New builds the HTTP handler for cfg on top of db.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// uploaded product images
	r.Static("/images", cfg.UploadDir)

	cookies := cookie.NewStore([]byte(cfg.SessionSecret))
	cookies.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, cookies))

	r.GET("/health", health(db))

	a := auth.New(store.NewUsers(db), cfg.ProductsPath, log)
	a.Register(r)

	web.NewProductRoutes(web.Deps{
		Products:     store.NewProducts(db),
		Categories:   store.NewCategories(db),
		Uploads:      upload.Disk{Dir: cfg.UploadDir},
		Gate:         a.Gate(),
		ImageBaseURL: cfg.PublicBaseURL,
		ListPath:     cfg.ProductsPath,
		Log:          log,
	}).Register(r)

	if cfg.ProductsPath != "/" {
		r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, cfg.ProductsPath) })
	}
	return r, nil
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
