package routes

import (
	"fmt"
	"html/template"
	"time"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine with request logging, panic recovery, the
// template helpers and all route groups. Templates themselves are loaded by
// the caller so tests can point the glob elsewhere.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	r.SetFuncMap(template.FuncMap{
		"money": func(f float64) string {
			return fmt.Sprintf("%.2f", f)
		},
		"moneyp": func(f *float64) string {
			if f == nil {
				return ""
			}
			return fmt.Sprintf("%.2f", *f)
		},
		"date": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"datep": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
	})

	AuthRoutes(r)
	VehicleRoutes(r)

	return r
}
