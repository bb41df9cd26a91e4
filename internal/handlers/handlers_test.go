package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/task-manager/internal/database"
	"github.com/yukikurage/task-manager/internal/services"
	"gorm.io/gorm"
)

const (
	adminUsername = "admin"
	adminPassword = "admin-Passw0rd"
)

// HandlerTestSuite drives the full router against in-memory SQLite
type HandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func (suite *HandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = database.OpenInMemory()
	suite.Require().NoError(err)

	registry := services.NewRegistry(suite.db, time.UTC)
	_, err = registry.Auth.Bootstrap(adminUsername, adminPassword)
	suite.Require().NoError(err)

	gin.SetMode(gin.TestMode)
	suite.router = NewRouter(registry, cookie.NewStore([]byte("test-session-secret")))
	suite.cookies = map[string]*http.Cookie{}
}

func (suite *HandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// do sends a request carrying the stored cookies and keeps any cookies set by the response
func (suite *HandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range suite.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		suite.cookies[c.Name] = c
	}
	return w
}

func (suite *HandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	return suite.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (suite *HandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return suite.do(req)
}

func (suite *HandlerTestSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return suite.do(req)
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func (suite *HandlerTestSuite) login() {
	w := suite.postJSON("/login", map[string]string{"username": adminUsername, "password": adminPassword})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) createID(path string, body any) uint64 {
	w := suite.postJSON(path, body)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return uint64(suite.decode(w)["id"].(float64))
}

func (suite *HandlerTestSuite) createWorker(username string, positionID uint64) uint64 {
	return suite.createID("/workers/create", map[string]any{
		"username":   username,
		"first_name": "Test",
		"last_name":  "Worker",
		"password1":  "s3cure-Passphrase",
		"password2":  "s3cure-Passphrase",
		"position":   positionID,
	})
}

func (suite *HandlerTestSuite) TestHealth_IsPublic() {
	w := suite.get("/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("ok", suite.decode(w)["status"])
}

func (suite *HandlerTestSuite) TestRoutes_RequireLogin() {
	for _, path := range []string{"/", "/tasks/", "/workers/1", "/positions/", "/task-types/", "/tags/", "/teams/", "/projects/"} {
		w := suite.get(path)
		suite.Equal(http.StatusUnauthorized, w.Code, path)
		suite.Equal("UNAUTHORIZED", suite.decode(w)["code"], path)
	}
	w := suite.postJSON("/tasks/create", map[string]string{"name": "x"})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_WrongPassword() {
	w := suite.postJSON("/login", map[string]string{"username": adminUsername, "password": "nope"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("INVALID_CREDENTIALS", suite.decode(w)["code"])

	w = suite.postJSON("/login", map[string]string{"username": adminUsername})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLogoutEndsSession() {
	suite.login()
	suite.Equal(http.StatusOK, suite.get("/me").Code)

	suite.Equal(http.StatusOK, suite.postJSON("/logout", nil).Code)
	suite.Equal(http.StatusUnauthorized, suite.get("/me").Code)
}

func (suite *HandlerTestSuite) TestDeletedWorkerLosesSession() {
	suite.login()
	me := suite.decode(suite.get("/me"))
	selfID := uint64(me["id"].(float64))

	suite.Equal(http.StatusNoContent, suite.postJSON(fmt.Sprintf("/workers/delete/%d", selfID), nil).Code)

	w := suite.get("/")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("UNAUTHORIZED", suite.decode(w)["code"])
	suite.Equal(http.StatusUnauthorized, suite.get("/tasks/").Code)
	suite.Equal(http.StatusUnauthorized, suite.postJSON("/positions/create", map[string]string{"name": "Ops"}).Code)
}

func (suite *HandlerTestSuite) TestDashboard_CountsVisits() {
	suite.login()

	first := suite.decode(suite.get("/"))
	suite.Equal(float64(1), first["num_visits"])
	suite.Equal(float64(1), first["num_workers"])
	suite.Equal(float64(0), first["num_tasks"])

	second := suite.decode(suite.get("/"))
	suite.Equal(float64(2), second["num_visits"])
}

func (suite *HandlerTestSuite) TestPositions_CRUDAndProtectedDelete() {
	suite.login()

	id := suite.createID("/positions/create", map[string]string{"name": "Developer"})

	w := suite.postJSON(fmt.Sprintf("/positions/update/%d", id), map[string]string{"name": "Senior Developer"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Senior Developer", suite.decode(w)["name"])

	suite.createWorker("alice", id)

	detail := suite.decode(suite.get(fmt.Sprintf("/positions/%d", id)))
	suite.Equal(float64(1), detail["worker_count"])

	w = suite.postJSON(fmt.Sprintf("/positions/delete/%d", id), nil)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("CONFLICT", suite.decode(w)["code"])
	suite.Equal(http.StatusOK, suite.get(fmt.Sprintf("/positions/%d", id)).Code)

	w = suite.postJSON("/positions/create", map[string]string{"name": "  "})
	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal("INVALID_INPUT", body["code"])
	suite.Equal("name", body["details"].(map[string]any)["field"])
}

func (suite *HandlerTestSuite) TestTaskTypes_CRUDAndProtectedDelete() {
	suite.login()

	id := suite.createID("/task-types/create", map[string]string{"name": "Bug"})

	w := suite.postJSON(fmt.Sprintf("/task-types/update/%d", id), map[string]string{"name": "Defect"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Defect", suite.decode(w)["name"])

	taskID := suite.createID("/tasks/create", map[string]any{"name": "Fix crash", "task_type": id})

	w = suite.postJSON(fmt.Sprintf("/task-types/delete/%d", id), nil)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("CONFLICT", suite.decode(w)["code"])

	suite.Equal(http.StatusNoContent, suite.postJSON(fmt.Sprintf("/tasks/delete/%d", taskID), nil).Code)
	suite.Equal(http.StatusNoContent, suite.postJSON(fmt.Sprintf("/task-types/delete/%d", id), nil).Code)
	suite.Equal(http.StatusNotFound, suite.get(fmt.Sprintf("/task-types/%d", id)).Code)
}

func (suite *HandlerTestSuite) TestTags_DeleteDetachesFromTasks() {
	suite.login()

	taskType := suite.createID("/task-types/create", map[string]string{"name": "Feature"})
	tag := suite.createID("/tags/create", map[string]string{"name": "backend"})

	w := suite.postJSON(fmt.Sprintf("/tags/update/%d", tag), map[string]string{"name": "api"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("api", suite.decode(w)["name"])

	w = suite.postJSON("/tags/create", map[string]string{"name": strings.Repeat("t", 51)})
	suite.Equal(http.StatusBadRequest, w.Code)

	taskID := suite.createID("/tasks/create", map[string]any{"name": "Endpoint", "task_type": taskType, "tags": []uint64{tag}})
	suite.Len(suite.decode(suite.get(fmt.Sprintf("/tasks/%d", taskID)))["tags"], 1)

	suite.Equal(http.StatusNoContent, suite.postJSON(fmt.Sprintf("/tags/delete/%d", tag), nil).Code)
	task := suite.decode(suite.get(fmt.Sprintf("/tasks/%d", taskID)))
	suite.Empty(task["tags"])
}

func (suite *HandlerTestSuite) TestTeamsAndProjects() {
	suite.login()

	position := suite.createID("/positions/create", map[string]string{"name": "Developer"})
	alice := suite.createWorker("alice", position)
	bob := suite.createWorker("bob", position)

	team := suite.createID("/teams/create", map[string]any{"name": "Platform", "members": []uint64{alice}})
	w := suite.postJSON(fmt.Sprintf("/teams/update/%d", team), map[string]any{"name": "Platform", "members": []uint64{alice, bob}})
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.decode(w)["members"], 2)

	w = suite.postJSON("/teams/create", map[string]any{"name": "Ghosts", "members": []uint64{999}})
	suite.Equal(http.StatusBadRequest, w.Code)

	project := suite.createID("/projects/create", map[string]any{"name": "Billing", "team": team})
	detail := suite.decode(suite.get(fmt.Sprintf("/projects/%d", project)))
	suite.Equal(float64(team), detail["team_id"])

	w = suite.postJSON(fmt.Sprintf("/projects/update/%d", project), map[string]any{"name": "Invoicing", "team": team})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Invoicing", suite.decode(w)["name"])

	suite.Equal(http.StatusNoContent, suite.postJSON(fmt.Sprintf("/teams/delete/%d", team), nil).Code)
	detail = suite.decode(suite.get(fmt.Sprintf("/projects/%d", project)))
	suite.Nil(detail["team_id"])

	suite.Equal(http.StatusNoContent, suite.postJSON(fmt.Sprintf("/projects/delete/%d", project), nil).Code)
	suite.Equal(http.StatusNotFound, suite.get(fmt.Sprintf("/projects/%d", project)).Code)
}

func (suite *HandlerTestSuite) TestNotFound() {
	suite.login()
	suite.Equal(http.StatusNotFound, suite.get("/tasks/999").Code)
	suite.Equal(http.StatusNotFound, suite.get("/tasks/abc").Code)
	suite.Equal(http.StatusNotFound, suite.postJSON("/tags/delete/999", nil).Code)
	suite.Equal(http.StatusNotFound, suite.postJSON("/teams/update/999", map[string]string{"name": "x"}).Code)
}

func (suite *HandlerTestSuite) TestList_SearchAndPagination() {
	suite.login()
	for i := 1; i <= 12; i++ {
		suite.createID("/tags/create", map[string]string{"name": fmt.Sprintf("Label %02d", i)})
	}
	suite.createID("/tags/create", map[string]string{"name": "other"})

	first := suite.decode(suite.get("/tags/?name=LABEL"))
	suite.Len(first["items"], 10)
	suite.Equal(map[string]any{"param": "name", "value": "LABEL"}, first["search"])
	pagination := first["pagination"].(map[string]any)
	suite.Equal(float64(12), pagination["total_count"])
	suite.Equal(float64(10), pagination["page_size"])
	suite.Equal(true, pagination["has_next"])
	suite.Equal(false, pagination["has_previous"])

	second := suite.decode(suite.get("/tags/?name=LABEL&page=2"))
	items := second["items"].([]any)
	suite.Len(items, 2)
	suite.Equal("Label 11", items[0].(map[string]any)["name"])
	suite.Equal(false, second["pagination"].(map[string]any)["has_next"])

	beyond := suite.decode(suite.get("/tags/?page=9"))
	suite.Empty(beyond["items"])

	for _, page := range []string{"1000000000000000000", "99999999999999999999"} {
		huge := suite.decode(suite.get("/tags/?page=" + page))
		suite.Empty(huge["items"], "page=%s", page)
		suite.Equal(true, huge["pagination"].(map[string]any)["has_previous"])
		suite.Equal(false, huge["pagination"].(map[string]any)["has_next"])
	}

	invalid := suite.decode(suite.get("/tags/?page=abc"))
	suite.Equal(float64(1), invalid["pagination"].(map[string]any)["page"])

	workers := suite.decode(suite.get("/workers/?username=ADM"))
	suite.Len(workers["items"], 1)
	suite.Equal("username", workers["search"].(map[string]any)["param"])
}

func (suite *HandlerTestSuite) TestWorkers_DuplicateUsername() {
	suite.login()
	position := suite.createID("/positions/create", map[string]string{"name": "Developer"})
	suite.createWorker("alice", position)

	w := suite.postJSON("/workers/create", map[string]any{
		"username":  "alice",
		"password1": "s3cure-Passphrase",
		"password2": "s3cure-Passphrase",
		"position":  position,
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal("ALREADY_EXISTS", body["code"])
	suite.Equal("username", body["details"].(map[string]any)["field"])
}

func (suite *HandlerTestSuite) TestTasks_DeadlineFromForm() {
	suite.login()
	taskType := suite.createID("/task-types/create", map[string]string{"name": "Bug"})

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	w := suite.postForm("/tasks/create", url.Values{
		"name":      {"Late"},
		"deadline":  {yesterday},
		"task_type": {fmt.Sprint(taskType)},
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("deadline", suite.decode(w)["details"].(map[string]any)["field"])

	today := time.Now().UTC().Format("2006-01-02")
	w = suite.postForm("/tasks/create", url.Values{
		"name":      {"On time"},
		"deadline":  {today},
		"priority":  {"high"},
		"task_type": {fmt.Sprint(taskType)},
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal("high", body["priority"])
	suite.Equal("On time: High", body["display_name"])
}

func (suite *HandlerTestSuite) TestEndToEnd_FixLoginForAlice() {
	suite.login()
	position := suite.createID("/positions/create", map[string]string{"name": "Developer"})
	alice := suite.createWorker("alice", position)
	bug := suite.createID("/task-types/create", map[string]string{"name": "Bug"})
	tag := suite.createID("/tags/create", map[string]string{"name": "auth"})
	team := suite.createID("/teams/create", map[string]any{"name": "Core", "members": []uint64{alice}})
	project := suite.createID("/projects/create", map[string]any{"name": "Website", "team": team})

	task := suite.createID("/tasks/create", map[string]any{
		"name":      "Fix login",
		"priority":  "urgent",
		"task_type": bug,
		"project":   project,
		"assignees": []uint64{alice},
		"tags":      []uint64{tag},
	})

	detail := suite.decode(suite.get(fmt.Sprintf("/workers/%d", alice)))
	suite.Len(detail["incomplete_tasks"], 1)
	suite.Empty(detail["completed_tasks"])
	suite.Len(detail["teams"], 1)

	w := suite.postJSON(fmt.Sprintf("/tasks/toggle/%d", task), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(true, suite.decode(w)["is_completed"])

	detail = suite.decode(suite.get(fmt.Sprintf("/workers/%d", alice)))
	suite.Empty(detail["incomplete_tasks"])
	completed := detail["completed_tasks"].([]any)
	suite.Require().Len(completed, 1)
	suite.Equal("Fix login", completed[0].(map[string]any)["name"])

	taskBody := suite.decode(suite.get(fmt.Sprintf("/tasks/%d", task)))
	suite.Equal("Website", taskBody["project"].(map[string]any)["name"])
	suite.Len(taskBody["tags"], 1)

	suite.Equal(http.StatusConflict, suite.postJSON(fmt.Sprintf("/task-types/delete/%d", bug), nil).Code)
	suite.Equal(http.StatusNoContent, suite.postJSON(fmt.Sprintf("/projects/delete/%d", project), nil).Code)

	taskBody = suite.decode(suite.get(fmt.Sprintf("/tasks/%d", task)))
	suite.Nil(taskBody["project_id"])

	suite.Equal(http.StatusNoContent, suite.postJSON(fmt.Sprintf("/workers/delete/%d", alice), nil).Code)
	taskBody = suite.decode(suite.get(fmt.Sprintf("/tasks/%d", task)))
	suite.Empty(taskBody["assignees"])
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
