package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"verifyme.backend/internal/domain/entities"
	"verifyme.backend/internal/usecases"
)

func newVerifyHandlerFixture() (*gin.Engine, *channelRepoStub, *companyRepoStub, *attemptRepoStub) {
	channelRepo := &channelRepoStub{}
	companyRepo := newCompanyRepoStub()
	attemptRepo := &attemptRepoStub{}
	h := NewVerifyHandler(usecases.NewVerifyUsecase(channelRepo, companyRepo, attemptRepo))

	r := gin.New()
	r.POST("/api/verify", h.Verify)
	r.GET("/api/analytics", h.Analytics)
	return r, channelRepo, companyRepo, attemptRepo
}

func TestVerifyHandler_HitAndMiss(t *testing.T) {
	r, channelRepo, companyRepo, attemptRepo := newVerifyHandlerFixture()

	company := &entities.Company{ID: uuid.New(), Name: "Acme Corp"}
	companyRepo.companies[company.ID] = company
	channelRepo.channels = append(channelRepo.channels, &entities.Channel{
		ID:        uuid.New(),
		CompanyID: company.ID,
		Type:      entities.ChannelTypeX,
		Value:     "@acmesupport",
		Status:    entities.ChannelStatusVerified,
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/verify", gin.H{"input_value": "@AcmeSupport"}))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["verified"])
	assert.Equal(t, "Acme Corp", body["company"])
	assert.Equal(t, "exact", body["confidence"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/verify", gin.H{"input_value": "@scammer"}))
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["verified"])
	assert.NotContains(t, body, "company")

	assert.Len(t, attemptRepo.attempts, 2)
}

func TestVerifyHandler_MissingInputValue(t *testing.T) {
	r, _, _, _ := newVerifyHandlerFixture()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/verify", gin.H{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["error"])
}

func TestVerifyHandler_Analytics(t *testing.T) {
	r, _, _, attemptRepo := newVerifyHandlerFixture()
	attemptRepo.attempts = []*entities.VerificationAttempt{
		{InputValue: "@a", Verified: true},
		{InputValue: "@b", Verified: false},
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total_verifications"])
	assert.Equal(t, float64(1), body["verified_count"])
	assert.Contains(t, body, "stats")
}
