package partners

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/castrol-web/nyumbaninala-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func validApplication() map[string]string {
	return map[string]string{
		"fullName":        "John Mollel",
		"email":           "john@acme.org",
		"phone":           "+255712345678",
		"country":         "Tanzania",
		"partnershipType": "sponsor",
		"proposal":        "We would like to sponsor the water project.",
	}
}

func TestCreatePartner_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "partners" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/partners", CreatePartner)

	jsonData, _ := json.Marshal(validApplication())

	req, _ := http.NewRequest(http.MethodPost, "/partners", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Application submitted successfully", respBody["message"])
	assert.NotNil(t, respBody["id"])
}

func TestCreatePartner_InvalidPartnershipType(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/partners", CreatePartner)

	application := validApplication()
	application["partnershipType"] = "government"
	jsonData, _ := json.Marshal(application)

	req, _ := http.NewRequest(http.MethodPost, "/partners", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid partnership type", respBody["error"])
}

func TestCreatePartner_MissingProposal(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/partners", CreatePartner)

	application := validApplication()
	delete(application, "proposal")
	jsonData, _ := json.Marshal(application)

	req, _ := http.NewRequest(http.MethodPost, "/partners", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Field validation for 'Proposal' failed")
}

func TestApprovePartner_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	partnerId := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "partners" WHERE id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "full_name", "email", "status", "created_at", "updated_at"}).
			AddRow(partnerId, "John Mollel", "john@acme.org", "pending", time.Now(), time.Now()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "partners" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/partners/:id/approve", ApprovePartner)

	req, _ := http.NewRequest(http.MethodPut, "/partners/"+partnerId+"/approve", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Partner approved successfully", respBody["message"])
}

func TestRejectPartner_InvalidId(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.PUT("/partners/:id/reject", RejectPartner)

	req, _ := http.NewRequest(http.MethodPut, "/partners/not-a-uuid/reject", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid partner ID", respBody["error"])
}
