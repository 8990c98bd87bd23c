package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/formbase/forms-go/config"
	"github.com/formbase/forms-go/db"
	"github.com/formbase/forms-go/handlers"
	"github.com/formbase/forms-go/internal/testutils"
	"github.com/formbase/forms-go/middleware"
	"github.com/formbase/forms-go/repositories"
	"github.com/formbase/forms-go/routes"
	"github.com/formbase/forms-go/services"

	_ "github.com/lib/pq"
)

var (
	router *gin.Engine
	repos  *repositories.Repos
)

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	repos = repositories.New()
	svcs := services.New(repos)
	routes.RegisterRoutes(router, handlers.New(svcs))

	// setup
	registerUserForTests("alice@test.com", "123456")
	registerUserForTests("bob@test.com", "123456")

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

// doRequest sends a JSON request through the router and checks the status
// when expectStatus is non-zero.
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func registerUserForTests(email, password string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(`{"email":"%s","password":"%s"}`, email, password)
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
}

func loginUser(t *testing.T, email, password string) string {
	resp := doRequest(t, "POST", "/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, http.StatusOK)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}
