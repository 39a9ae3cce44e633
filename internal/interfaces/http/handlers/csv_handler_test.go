package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"verifyme.backend/internal/usecases"
)

func newCSVFixture(companyID uuid.UUID, checker usecases.OwnershipChecker) (*gin.Engine, *channelRepoStub) {
	repo := &channelRepoStub{}
	h := NewCSVHandler(usecases.NewBulkUsecase(repo, checker, 2, time.Second))

	r := gin.New()
	g := r.Group("/api/csv", withCompany(companyID))
	{
		g.POST("/upload", h.Upload)
		g.POST("/verify", h.Verify)
	}
	return r, repo
}

func TestCSVHandler_Upload(t *testing.T) {
	companyID := uuid.New()
	r, repo := newCSVFixture(companyID, &checkerStub{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/csv/upload", gin.H{
		"channels": []gin.H{
			{"channel": "@AcmeSupport", "type": "x"},
			{"channel": "acme.io", "type": "website", "description": "main site"},
		},
	}))
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["count"])
	assert.Contains(t, body, "verifications")
	require.Len(t, repo.channels, 2)
	assert.Equal(t, "@acmesupport", repo.channels[0].Value)
	assert.True(t, repo.channels[0].Metadata.Valid)
}

func TestCSVHandler_Upload_RejectsWholeBatch(t *testing.T) {
	r, repo := newCSVFixture(uuid.New(), &checkerStub{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/csv/upload", gin.H{
		"channels": []gin.H{
			{"channel": "@good", "type": "x"},
			{"channel": "", "type": "x"},
		},
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.channels)
}

func TestCSVHandler_Verify(t *testing.T) {
	companyID := uuid.New()
	checker := &checkerStub{allow: map[string]bool{"@pass": true}}
	r, repo := newCSVFixture(companyID, checker)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/csv/upload", gin.H{
		"channels": []gin.H{
			{"channel": "@pass", "type": "x"},
			{"channel": "@fail", "type": "x"},
		},
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	ids := []string{repo.channels[0].ID.String(), repo.channels[1].ID.String()}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/csv/verify", gin.H{"verificationIds": ids}))
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Contains(t, body, "results")
	assert.Len(t, body["results"], 2)

	assert.Equal(t, "verified", string(repo.channels[0].Status))
	assert.True(t, repo.channels[0].VerifiedAt.Valid)
	assert.Equal(t, "failed", string(repo.channels[1].Status))
	assert.False(t, repo.channels[1].VerifiedAt.Valid)
}

func TestCSVHandler_Verify_NoResolvableIDs(t *testing.T) {
	r, _ := newCSVFixture(uuid.New(), &checkerStub{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/csv/verify", gin.H{
		"verificationIds": []string{uuid.New().String()},
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCSVHandler_Verify_SkipsForeignChannels(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	checker := &checkerStub{allow: map[string]bool{"@mine": true}}
	repo := &channelRepoStub{}

	ownerHandler := NewCSVHandler(usecases.NewBulkUsecase(repo, checker, 2, time.Second))
	ownerRouter := gin.New()
	ownerRouter.POST("/api/csv/upload", withCompany(owner), ownerHandler.Upload)
	ownerRouter.POST("/api/csv/verify", withCompany(intruder), ownerHandler.Verify)

	w := httptest.NewRecorder()
	ownerRouter.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/csv/upload", gin.H{
		"channels": []gin.H{{"channel": "@mine", "type": "x"}},
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	// A different company cannot trigger verification of the owner's rows
	w = httptest.NewRecorder()
	ownerRouter.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/csv/verify", gin.H{
		"verificationIds": []string{repo.channels[0].ID.String()},
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "unverified", string(repo.channels[0].Status))
}
