package tests

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	. "github.com/trezcool/unitrack/apps/api/echo"
	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/admissions"
	"github.com/trezcool/unitrack/core/college"
	"github.com/trezcool/unitrack/core/student"
	emailsvc "github.com/trezcool/unitrack/services/email"
	logsvc "github.com/trezcool/unitrack/services/logger"
	"github.com/trezcool/unitrack/storage/database/inmem"
)

var (
	conf          *core.Config
	db            *inmemdb.DB
	app           *Server
	clgRepo       college.Repository
	stdtRepo      student.Repository
	admissionsSvc *admissions.Service
	mailSvc       *emailsvc.ConsoleService

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

func TestMain(m *testing.M) {
	conf = &core.Config{
		AppName:          "Unitrack",
		Env:              "TEST",
		TestMode:         true,
		SecretKey:        "test-secret",
		FrontendBaseURL:  "http://localhost:3000",
		DefaultFromEmail: mail.Address{Name: "Unitrack", Address: "noreply@test.cd"},
		Server:           core.ServerConfig{JWTExpirationDelta: time.Hour},
		Chancing: core.ChancingConfig{
			DefaultAverageGPA: 3.5,
			DefaultSATRange:   core.ScoreRangeConfig{P25: 1200, P75: 1400},
			DefaultACTRange:   core.ScoreRangeConfig{P25: 25, P75: 32},
		},
	}

	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	logger.Enable(false)

	// set up DB & repos
	db = inmemdb.Open()
	clgRepo = inmemdb.NewCollegeRepository(db)
	stdtRepo = inmemdb.NewStudentRepository(db)

	// set up services
	clgSvc := college.NewService(clgRepo)
	stdtSvc := student.NewService(stdtRepo)
	admissionsSvc = admissions.NewService(admissions.NewEngine(conf), clgSvc, stdtSvc)
	mailSvc = emailsvc.NewConsoleService(conf, ioutil.Discard)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	college.InitValidators(validate, translator)

	// set up server
	app = NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		CollegeSvc:     clgSvc,
		StudentSvc:     stdtSvc,
		AdmissionsSvc:  admissionsSvc,
		MailSvc:        mailSvc,
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})

	os.Exit(m.Run())
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, stdt student.Student) string {
	token, err := GenerateToken(conf, stdt)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj(): %v", err)
	}
	return data
}

func marshalList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marshalList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, tests []httpTest) {
	for _, tt := range tests {
		if tt.method == "" {
			tt.method = http.MethodGet
		}
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
