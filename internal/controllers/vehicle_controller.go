package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"garasjelogg/internal/config"
	"garasjelogg/internal/forms"
	"garasjelogg/internal/logger"
	"garasjelogg/internal/middleware"
	"garasjelogg/internal/models"
)

// vehicleRow is a vehicle annotated with its computed total cost for the
// listing view.
type vehicleRow struct {
	models.Vehicle
	TotalCost float64
}

// ListVehicles shows all vehicles, most recently created first, each with
// the sum of its entry costs.
func ListVehicles(c *gin.Context) {
	sess := middleware.MustSession(c)

	var vehicles []models.Vehicle
	if err := config.DB.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		logger.L().WithError(err).Error("listing vehicles failed")
		c.String(http.StatusInternalServerError, "databasefeil: %s", err.Error())
		return
	}

	totals, err := totalCosts(config.DB)
	if err != nil {
		logger.L().WithError(err).Error("summing entry costs failed")
		c.String(http.StatusInternalServerError, "databasefeil: %s", err.Error())
		return
	}

	rows := make([]vehicleRow, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, vehicleRow{Vehicle: v, TotalCost: totals[v.ID]})
	}

	c.HTML(http.StatusOK, "vehicles.html", gin.H{
		"User":     sess.User,
		"Vehicles": rows,
		"Flashes":  sess.Flashes(),
	})
}

// ShowVehicle handles GET /vehicles/:id. The reserved id "new" renders the
// registration form; everything else is a vehicle lookup.
func ShowVehicle(c *gin.Context) {
	if c.Param("id") == "new" {
		NewVehicleForm(c)
		return
	}
	VehicleDetail(c)
}

// PostVehicle handles POST /vehicles/:id. Only the reserved id "new" is
// valid and registers a vehicle.
func PostVehicle(c *gin.Context) {
	if c.Param("id") == "new" {
		CreateVehicle(c)
		return
	}
	c.AbortWithStatus(http.StatusNotFound)
}

// NewVehicleForm renders the empty registration form.
func NewVehicleForm(c *gin.Context) {
	sess := middleware.MustSession(c)
	c.HTML(http.StatusOK, "vehicle_new.html", gin.H{
		"User":    sess.User,
		"Flashes": sess.Flashes(),
	})
}

// CreateVehicle registers a new vehicle from the submitted form. Any
// failure rolls back and redisplays the empty form with the failure detail;
// submitted values are not preserved.
func CreateVehicle(c *gin.Context) {
	sess := middleware.MustSession(c)

	regnr := forms.NormalizeRegNr(c.PostForm("regnr"))
	makeName := strings.TrimSpace(c.PostForm("make"))
	vtype := strings.TrimSpace(c.PostForm("vtype"))
	model := strings.TrimSpace(c.PostForm("model"))

	if regnr == "" || makeName == "" || vtype == "" || model == "" {
		renderNewVehicleError(c, sess.User, "Kunne ikke registrere bil: alle felt unntatt innkjøpspris er påkrevd")
		return
	}

	purchase, err := forms.OptionalFloat(c.PostForm("purchase_price"))
	if err != nil {
		renderNewVehicleError(c, sess.User, "Kunne ikke registrere bil: "+err.Error())
		return
	}

	vehicle := models.Vehicle{
		RegNr:         regnr,
		Make:          makeName,
		VType:         vtype,
		VModel:        model,
		PurchasePrice: purchase,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		renderNewVehicleError(c, sess.User, "Kunne ikke registrere bil: "+tx.Error.Error())
		return
	}

	if err := tx.Create(&vehicle).Error; err != nil {
		tx.Rollback()
		if isDuplicateRegNr(err) {
			renderNewVehicleError(c, sess.User, "Regnr er allerede registrert")
		} else {
			renderNewVehicleError(c, sess.User, "Kunne ikke registrere bil: "+err.Error())
		}
		return
	}

	if err := tx.Commit().Error; err != nil {
		renderNewVehicleError(c, sess.User, "Kunne ikke registrere bil: "+err.Error())
		return
	}

	logger.L().WithField("regnr", vehicle.RegNr).Info("vehicle registered")
	sess.AddFlash("Bil registrert")
	c.Redirect(http.StatusFound, "/vehicles")
}

// VehicleDetail shows one vehicle with its entries and total cost.
// Unknown ids end the request with 404, not a redirect.
func VehicleDetail(c *gin.Context) {
	sess := middleware.MustSession(c)

	vehicle, ok := findVehicle(c)
	if !ok {
		return
	}

	var entries []models.ServiceEntry
	if err := config.DB.
		Where("vehicle_id = ?", vehicle.ID).
		Order("date, id").
		Find(&entries).Error; err != nil {
		logger.L().WithError(err).Error("loading entries failed")
		c.String(http.StatusInternalServerError, "databasefeil: %s", err.Error())
		return
	}

	var total float64
	for _, e := range entries {
		total += e.Cost
	}

	c.HTML(http.StatusOK, "vehicle_detail.html", gin.H{
		"User":      sess.User,
		"Vehicle":   vehicle,
		"Entries":   entries,
		"TotalCost": total,
		"Flashes":   sess.Flashes(),
	})
}

// SellVehicle records a sale price. The sold date is always stamped with the
// current time, even when the price field is submitted empty and the price
// is cleared to null. That asymmetry is intentional and kept as-is.
func SellVehicle(c *gin.Context) {
	sess := middleware.MustSession(c)

	vehicle, ok := findVehicle(c)
	if !ok {
		return
	}
	detailURL := "/vehicles/" + strconv.FormatUint(uint64(vehicle.ID), 10)

	price, err := forms.OptionalFloat(c.PostForm("sale_price"))
	if err != nil {
		sess.AddFlash("Kunne ikke oppdatere utsalgspris: " + err.Error())
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		sess.AddFlash("Kunne ikke oppdatere utsalgspris: " + tx.Error.Error())
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	err = tx.Model(&vehicle).Updates(map[string]interface{}{
		"sale_price": price,
		"sold_date":  time.Now().UTC(),
	}).Error
	if err != nil {
		tx.Rollback()
		sess.AddFlash("Kunne ikke oppdatere utsalgspris: " + err.Error())
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	if err := tx.Commit().Error; err != nil {
		sess.AddFlash("Kunne ikke oppdatere utsalgspris: " + err.Error())
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	logger.L().WithField("regnr", vehicle.RegNr).Info("sale recorded")
	sess.AddFlash("Utsalgspris registrert")
	c.Redirect(http.StatusFound, detailURL)
}

func renderNewVehicleError(c *gin.Context, user, msg string) {
	c.HTML(http.StatusBadRequest, "vehicle_new.html", gin.H{
		"User":  user,
		"Error": msg,
	})
}

// findVehicle resolves the :id path parameter. On an unknown or malformed
// id it writes the 404 response itself and returns ok=false.
func findVehicle(c *gin.Context) (models.Vehicle, bool) {
	var vehicle models.Vehicle

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return vehicle, false
	}

	if err := config.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
		} else {
			logger.L().WithError(err).Error("loading vehicle failed")
			c.String(http.StatusInternalServerError, "databasefeil: %s", err.Error())
			c.Abort()
		}
		return vehicle, false
	}

	return vehicle, true
}

// totalCosts sums entry costs grouped per vehicle.
func totalCosts(db *gorm.DB) (map[uint]float64, error) {
	var rows []struct {
		VehicleID uint
		Total     float64
	}
	err := db.Model(&models.ServiceEntry{}).
		Select("vehicle_id, COALESCE(SUM(cost), 0) AS total").
		Group("vehicle_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]float64, len(rows))
	for _, r := range rows {
		totals[r.VehicleID] = r.Total
	}
	return totals, nil
}

// isDuplicateRegNr recognizes a unique-constraint violation across the
// supported drivers: pq error 23505 on postgres, the driver error strings
// elsewhere.
func isDuplicateRegNr(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
