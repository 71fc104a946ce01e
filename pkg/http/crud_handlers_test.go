package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Musoye/ecoflow-backend/pkg/common"
	"github.com/Musoye/ecoflow-backend/pkg/models"
	_ "github.com/Musoye/ecoflow-backend/pkg/testing"
)

func createTestAlert(t *testing.T, rs *RestfulServer, heading string) models.Alert {
	t.Helper()

	body, _ := json.Marshal(AlertRequest{Heading: heading, SubHeading: "manual entry"})
	req := httptest.NewRequest(http.MethodPost, "/alerts/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var alert models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alert))
	return alert
}

func TestAlertCRUD(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _, _ := setupTestServer(t)

	alert := createTestAlert(t, rs, "Overcrowding in Hall A")
	assert.Equal(t, models.AlertStatusOpen, alert.Status)
	assert.Nil(t, alert.CameraID)

	// read it back
	req := httptest.NewRequest(http.MethodGet, "/alerts/"+uintToString(alert.ID), nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Overcrowding in Hall A", fetched.Heading)

	// close it
	body, _ := json.Marshal(map[string]string{"status": "CLOSED"})
	req = httptest.NewRequest(http.MethodPut, "/alerts/"+uintToString(alert.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.AlertStatusClosed, updated.Status)

	// the closed alert no longer shows in the OPEN listing
	req = httptest.NewRequest(http.MethodGet, "/alerts/?status=OPEN", nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var open []models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &open))
	for _, a := range open {
		assert.NotEqual(t, alert.ID, a.ID)
	}

	// delete
	req = httptest.NewRequest(http.MethodDelete, "/alerts/"+uintToString(alert.ID), nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/alerts/"+uintToString(alert.ID), nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Alert not found"}`, w.Body.String())
}

func TestAlertCRUD_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _, _ := setupTestServer(t)

	{
		// missing heading should be rejected
		req := httptest.NewRequest(http.MethodPost, "/alerts/", bytes.NewReader([]byte("{}")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// unknown status value
		body, _ := json.Marshal(AlertRequest{Heading: "h", Status: "SNOOZED"})
		req := httptest.NewRequest(http.MethodPost, "/alerts/", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid 'status'"}`, w.Body.String())
	}

	{
		// unknown status filter on listing
		req := httptest.NewRequest(http.MethodGet, "/alerts/?status=SNOOZED", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// non-numeric id
		req := httptest.NewRequest(http.MethodGet, "/alerts/abc", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid 'alert_id'"}`, w.Body.String())
	}

	{
		// update of a missing alert
		body, _ := json.Marshal(map[string]string{"status": "CLOSED"})
		req := httptest.NewRequest(http.MethodPut, "/alerts/9999999", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestNotificationCRUD(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _, _ := setupTestServer(t)

	body, _ := json.Marshal(NotificationRequest{Heading: "Maintenance", Message: "Hall A closes at 18:00"})
	req := httptest.NewRequest(http.MethodPost, "/notifications/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Hall A closes at 18:00", created.Message)

	req = httptest.NewRequest(http.MethodGet, "/notifications/", nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	found := false
	for _, n := range list {
		if n.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)

	req = httptest.NewRequest(http.MethodGet, "/notifications/"+uintToString(created.ID), nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/notifications/"+uintToString(created.ID), nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/notifications/"+uintToString(created.ID), nil)
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Notification not found"}`, w.Body.String())
}

func TestNotificationCRUD_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _, _ := setupTestServer(t)

	// missing message should be rejected
	req := httptest.NewRequest(http.MethodPost, "/notifications/", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
