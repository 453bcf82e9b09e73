package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/users"
)

func devConfig(t *testing.T) config.Config {
	return config.Config{
		Env:             "dev",
		SecretKey:       "test-secret",
		SessionTTL:      time.Hour,
		SessionCookie:   "session",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		AuthRatePerSec:  1,
		AuthRateBurst:   10,
	}
}

func TestBuildFallsBackToMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(devConfig(t))
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.DB)
	assert.IsType(t, &users.MemoryRepo{}, app.UsersRepo)
	assert.IsType(t, &resumes.MemoryRepo{}, app.ResumesRepo)
	assert.NotNil(t, app.Archive)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/auth", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestBuildWithoutArchive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := devConfig(t)
	cfg.ObjectStoreType = "none"

	app, err := Build(cfg)
	require.NoError(t, err)
	assert.Nil(t, app.Archive)
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "production"

	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildS3RequiresBucket(t *testing.T) {
	cfg := devConfig(t)
	cfg.ObjectStoreType = "s3"

	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuildRequiresSecret(t *testing.T) {
	cfg := devConfig(t)
	cfg.SecretKey = ""

	_, err := Build(cfg)
	assert.Error(t, err)
}
