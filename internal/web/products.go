// Package web is the product admin route table.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopadmin/internal/auth"
	"shopadmin/internal/catalog"
	"shopadmin/internal/models"
	"shopadmin/internal/views"
)

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Insert(ctx context.Context, rec catalog.Record) error
	Delete(ctx context.Context, id string) error
	ByID(ctx context.Context, id string) (models.Product, error)
	Update(ctx context.Context, id string, rec catalog.Record) error
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
}

// Uploader stores the file sent in field and returns its stored name,
// or "" when the request carried no such file.
type Uploader interface {
	Save(c *gin.Context, field string) (string, error)
}

// Deps are the collaborators of the product routes.
type Deps struct {
	Products   ProductStore
	Categories CategoryStore
	Uploads    Uploader
	// Gate runs before every product handler.
	Gate gin.HandlerFunc
	// ImageBaseURL prefixes "/images/<file>" in stored image URLs.
	ImageBaseURL string
	// ListPath is where the routes are mounted and where saves redirect to.
	ListPath string
	Log      *zap.Logger
}

type ProductRoutes struct {
	Deps
}

func NewProductRoutes(d Deps) *ProductRoutes {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Gate == nil {
		d.Gate = func(c *gin.Context) { c.Next() }
	}
	return &ProductRoutes{Deps: d}
}

// Register mounts the product routes under ListPath.
func (p *ProductRoutes) Register(r gin.IRouter) {
	g := r.Group(p.ListPath, p.Gate)

	g.GET("", p.handle(p.list))
	g.POST("", p.handle(p.insert))
	g.GET("/insert", p.handle(p.insertForm))
	g.DELETE("/:id/delete", p.handle(p.delete))
	g.GET("/:id/edit", p.handle(p.editForm))
	g.POST("/:id/edit", p.handle(p.update))
}

func (p *ProductRoutes) list(c *gin.Context) error {
	items, err := p.Products.List(c.Request.Context())
	if err != nil {
		return err
	}
	c.HTML(http.StatusOK, "products.tmpl", p.page(c, "Products", views.ViewData{"Products": items}))
	return nil
}

func (p *ProductRoutes) insert(c *gin.Context) error {
	name, err := p.Uploads.Save(c, catalog.ImageField)
	if err != nil {
		return err
	}
	fields, err := formRecord(c)
	if err != nil {
		return err
	}
	rec := catalog.ForInsert(fields, p.imageURL(name))
	if err := p.Products.Insert(c.Request.Context(), rec); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, p.ListPath)
	return nil
}

func (p *ProductRoutes) insertForm(c *gin.Context) error {
	categories, err := p.Categories.List(c.Request.Context())
	if err != nil {
		return err
	}
	c.HTML(http.StatusOK, "product_insert.tmpl", p.page(c, "New product", views.ViewData{
		"Product":    models.Product{},
		"Categories": categories,
	}))
	return nil
}

func (p *ProductRoutes) delete(c *gin.Context) error {
	if err := p.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		return err
	}
	c.JSON(http.StatusOK, gin.H{"result": true})
	return nil
}

func (p *ProductRoutes) editForm(c *gin.Context) error {
	ctx := c.Request.Context()
	product, err := p.Products.ByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	categories, err := p.Categories.List(ctx)
	if err != nil {
		return err
	}
	c.HTML(http.StatusOK, "product.tmpl", p.page(c, "Edit "+product.Name, views.ViewData{
		"Product":    product,
		"Categories": categories,
	}))
	return nil
}

func (p *ProductRoutes) update(c *gin.Context) error {
	name, err := p.Uploads.Save(c, catalog.ImageField)
	if err != nil {
		return err
	}
	fields, err := formRecord(c)
	if err != nil {
		return err
	}
	rec := catalog.ForUpdate(fields, p.imageURL(name))
	if err := p.Products.Update(c.Request.Context(), c.Param("id"), rec); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, p.ListPath)
	return nil
}

func (p *ProductRoutes) imageURL(filename string) string {
	if filename == "" {
		return ""
	}
	return catalog.ImageURL(p.ImageBaseURL, filename)
}

// page adds the fields the layout needs to data.
func (p *ProductRoutes) page(c *gin.Context, title string, data views.ViewData) views.ViewData {
	if data == nil {
		data = views.ViewData{}
	}
	data["Title"] = title
	data["ListPath"] = p.ListPath
	data["UserName"] = auth.CurrentUser(c)
	return data
}

// formRecord collects the submitted form fields, first value per key.
func formRecord(c *gin.Context) (catalog.Record, error) {
	if c.Request.PostForm == nil {
		if _, err := c.MultipartForm(); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, fmt.Errorf("%w: %v", errBadForm, err)
		}
	}
	rec := catalog.Record{}
	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			rec[k] = vs[0]
		}
	}
	return rec, nil
}
