package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	repository "healthlog/internal/adapters/repository"
	"healthlog/internal/app"
	"healthlog/internal/domain/model"
	"healthlog/pkg/logger"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	_ = logger.Init()
	m.Run()
}

type eventFunc func(ctx context.Context, ev model.Event) (model.Response, error)

func (f eventFunc) HandleEvent(ctx context.Context, ev model.Event) (model.Response, error) {
	return f(ctx, ev)
}

type staticStats map[string]interface{}

func (s staticStats) GetStats() map[string]interface{} { return s }

func newTestMux(deps Dependencies) *http.ServeMux {
	mux := http.NewServeMux()
	NewServer(deps, staticStats{"store": "test"}).Register(context.Background(), mux)
	return mux
}

func postSkill(mux *http.ServeMux, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/skill", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestPostSkill(t *testing.T) {
	svc := app.New(app.WithStore(repository.NewMemoryStore()))
	mux := newTestMux(svc)

	Convey("Given a launch request", t, func() {
		rec := postSkill(mux, `{"type":"LaunchRequest","user_id":"user-1","new_session":true}`)

		Convey("Then the skill answers with speech", func() {
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldStartWith, "application/json")

			var resp skillResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Speech, ShouldContainSubstring, "Who's your first user?")
			So(resp.Reprompt, ShouldNotBeEmpty)
			So(resp.EndSession, ShouldBeFalse)
		})
	})

	Convey("Given an intent request with slots", t, func() {
		rec := postSkill(mux, `{
			"type": "IntentRequest",
			"intent": "AddUserIntent",
			"slots": {"UserName": "alex"},
			"user_id": "user-2"
		}`)

		Convey("Then the intent is dispatched", func() {
			So(rec.Code, ShouldEqual, http.StatusOK)

			var resp skillResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Speech, ShouldContainSubstring, "alex has been added to your log.")
		})
	})

	Convey("Given malformed JSON", t, func() {
		rec := postSkill(mux, `{"type":`)

		Convey("Then the request is rejected", func() {
			So(rec.Code, ShouldEqual, http.StatusBadRequest)

			var resp errorResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Code, ShouldEqual, "bad_request")
		})
	})

	Convey("Given a request without user_id", t, func() {
		rec := postSkill(mux, `{"type":"LaunchRequest"}`)

		Convey("Then validation fails", func() {
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "missing user_id")
		})
	})

	Convey("Given an intent request without an intent", t, func() {
		rec := postSkill(mux, `{"type":"IntentRequest","user_id":"user-1"}`)

		Convey("Then validation fails", func() {
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "missing intent")
		})
	})

	Convey("Given an unsupported request type", t, func() {
		rec := postSkill(mux, `{"type":"TeleportRequest","user_id":"user-1"}`)

		Convey("Then validation fails", func() {
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "invalid type")
		})
	})

	Convey("Given an intent the skill does not know", t, func() {
		rec := postSkill(mux, `{"type":"IntentRequest","intent":"MakeCoffeeIntent","user_id":"user-1"}`)

		Convey("Then it maps to a client error", func() {
			So(rec.Code, ShouldEqual, http.StatusBadRequest)

			var resp errorResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Code, ShouldEqual, "unknown_intent")
		})
	})

	Convey("Given a GET on the skill endpoint", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/skill", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		Convey("Then it is not found", func() {
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a backend that fails", t, func() {
		failing := newTestMux(eventFunc(func(context.Context, model.Event) (model.Response, error) {
			return model.Response{}, context.DeadlineExceeded
		}))
		rec := postSkill(failing, `{"type":"LaunchRequest","user_id":"user-1"}`)

		Convey("Then the failure maps to a server error", func() {
			So(rec.Code, ShouldEqual, http.StatusInternalServerError)

			var resp errorResponse
			So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
			So(resp.Code, ShouldEqual, "internal_error")
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	svc := app.New(app.WithStore(repository.NewMemoryStore()))
	mux := newTestMux(svc)

	Convey("Given the stats endpoint", t, func() {
		Convey("When fetched with GET", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then runtime stats come back as JSON", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var stats map[string]interface{}
				So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
				So(stats, ShouldContainKey, "store")
			})
		})

		Convey("When fetched with POST", func() {
			req := httptest.NewRequest(http.MethodPost, "/stats", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then it is not found", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	svc := app.New(app.WithStore(repository.NewMemoryStore()))
	mux := newTestMux(svc)

	Convey("Given the health endpoint", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		Convey("Then the metrics exposition is served", func() {
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "healthlog_")
		})
	})
}
