package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"garasjelogg/internal/config"
	"garasjelogg/internal/forms"
	"garasjelogg/internal/logger"
	"garasjelogg/internal/middleware"
	"garasjelogg/internal/models"
)

// AddEntry records a service/repair entry on a vehicle. Missing fields get
// their defaults: today's UTC date, category "service", cost 0, odometer 0.
// On failure the entry is discarded and the user is sent back to the detail
// page with the failure text; it is not re-shown for editing.
func AddEntry(c *gin.Context) {
	sess := middleware.MustSession(c)

	vehicle, ok := findVehicle(c)
	if !ok {
		return
	}
	detailURL := "/vehicles/" + strconv.FormatUint(uint64(vehicle.ID), 10)

	fail := func(err error) {
		sess.AddFlash("Kunne ikke legge til oppføring: " + err.Error())
		c.Redirect(http.StatusFound, detailURL)
	}

	date, err := forms.DateOrToday(c.PostForm("date"))
	if err != nil {
		fail(err)
		return
	}
	cost, err := forms.FloatOrZero(c.PostForm("cost"))
	if err != nil {
		fail(err)
		return
	}
	odometer, err := forms.IntOrZero(c.PostForm("odometer"))
	if err != nil {
		fail(err)
		return
	}

	entry := models.ServiceEntry{
		VehicleID:   vehicle.ID,
		Date:        date,
		Category:    forms.Default(c.PostForm("category"), "service"),
		Description: strings.TrimSpace(c.PostForm("description")),
		Cost:        cost,
		Odometer:    odometer,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		fail(tx.Error)
		return
	}

	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		fail(err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		fail(err)
		return
	}

	logger.L().WithField("regnr", vehicle.RegNr).WithField("category", entry.Category).Info("entry added")
	sess.AddFlash("Service/reparasjon lagt til")
	c.Redirect(http.StatusFound, detailURL)
}
