package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/constants"
	"labourlink/dto"
	"labourlink/models"
)

func scanQRCode(t *testing.T, ctl *AdminController, payload string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/qr/verify", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("userID", uint(1))
	c.Set("userRole", constants.RoleAdmin)

	ctl.VerifyQRCode(c)
	return w
}

// A scan of an ID nobody holds must not leave a verification row behind
func TestVerifyQRCodeUnknownIDWritesNoLogRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	ctl := NewAdminController(db, nil)

	w := scanQRCode(t, ctl, `{"labourId":"LAB-2026-9999"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var logs int64
	db.Model(&models.QRVerificationLog{}).Count(&logs)
	assert.Equal(t, int64(0), logs)
}

func TestVerifyQRCodeLogsResolvedScan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	ctl := NewAdminController(db, nil)

	labourID := "LAB-2026-0001"
	require.NoError(t, db.Create(&models.LabourProfile{
		UserID:      7,
		DisplayName: "Ramesh Kumar",
		SkillType:   constants.SkillTypeSkilled,
		LabourID:    &labourID,
		Status:      constants.ProfileStatusApproved,
	}).Error)

	w := scanQRCode(t, ctl, `{"labourId":"LAB-2026-0001"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code int                  `json:"code"`
		Data dto.QRVerifyResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "valid", body.Data.Result)
	assert.Equal(t, "Ramesh Kumar", body.Data.DisplayName)

	var log models.QRVerificationLog
	require.NoError(t, db.First(&log).Error)
	assert.Equal(t, uint(7), log.LabourID)
	assert.Equal(t, uint(1), log.ScannedBy)
	assert.Equal(t, "valid", log.Result)
}
