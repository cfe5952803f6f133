package websvrutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// TestDispatchRouteParamBinding tests routing with parameter extraction
// through the full dispatch path / 전체 디스패치 경로를 통한 매개변수 추출
// 라우팅 테스트
func TestDispatchRouteParamBinding(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.GET("/users/:id", func(w http.ResponseWriter, r *http.Request) {
		ctx := GetContext(r)
		_ = ctx.JSON(http.StatusOK, map[string]string{"id": ctx.Param("id")})
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("GET", "/users/42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["id"] != "42" {
		t.Errorf(`Expected {"id":"42"}, got %s`, rec.Body.String())
	}
}

// TestDispatchMethodNotAllowed tests the 405 path with the Allow header
// Allow 헤더가 있는 405 경로 테스트
func TestDispatchMethodNotAllowed(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.GET("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("POST", "/x", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET" {
		t.Errorf("Expected Allow: GET, got %q", allow)
	}
}

// TestDispatchMethodNotAllowedJSON tests the JSON error body on 405
// 405의 JSON 에러 본문 테스트
func TestDispatchMethodNotAllowedJSON(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.GET("/x", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("POST", "/x", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected status 405, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	if body["error"] != "routing" {
		t.Errorf("Expected error kind routing, got %v", body["error"])
	}
	if body["timestamp"] == nil {
		t.Error("Expected a timestamp in the error body")
	}
}

// TestDispatchShortCircuit tests that a short-circuiting middleware skips
// the handler but outbound-only middleware still stamps the response
// 단락 미들웨어가 핸들러를 건너뛰지만 아웃바운드 전용 미들웨어는 여전히
// 응답에 스탬프를 찍는지 테스트
func TestDispatchShortCircuit(t *testing.T) {
	var handlerCalls int64

	app := New(WithTemplateDir(""))
	app.RegisterMiddleware(Registration{
		Name:     "auth_gate",
		Priority: 0,
		Inbound: func(c *Context) Action {
			c.ResponseWriter.WriteHeader(http.StatusUnauthorized)
			return ShortCircuit
		},
	})
	app.RegisterMiddleware(Registration{
		Name:     "stamp",
		Priority: 10,
		Outbound: func(c *Context) {
			c.ResponseWriter.Header().Set("X-B", "1")
		},
	})
	app.GET("/secret", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&handlerCalls, 1)
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("GET", "/secret", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
	if rec.Header().Get("X-B") != "1" {
		t.Error("Expected outbound middleware to set X-B: 1")
	}
	if atomic.LoadInt64(&handlerCalls) != 0 {
		t.Errorf("Expected handler never to run, ran %d times", handlerCalls)
	}
}

// TestDispatchCORSPreflight tests the Capture flow: OPTIONS answered by
// the CORS middleware with 204 and the configured headers
// Capture 흐름 테스트: CORS 미들웨어가 204와 설정된 헤더로 OPTIONS에 응답
func TestDispatchCORSPreflight(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.RegisterMiddleware(CORSRegistrationWithConfig(CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
	}))
	app.GET("/anything", func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not run for a preflight request")
	})

	req := httptest.NewRequest("OPTIONS", "/anything", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin: *, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST" {
		t.Errorf("Expected Access-Control-Allow-Methods: GET, POST, got %q", got)
	}
}

// TestDispatchNotFoundRunsOutbound tests that a 404 still passes through
// the outbound chain / 404도 아웃바운드 체인을 통과하는지 테스트
func TestDispatchNotFoundRunsOutbound(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.RegisterMiddleware(Registration{
		Name:     "stamp",
		Priority: 0,
		Outbound: func(c *Context) {
			c.ResponseWriter.Header().Set("X-Outbound", "ran")
		},
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("GET", "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
	if rec.Header().Get("X-Outbound") != "ran" {
		t.Error("Expected outbound middleware to run on the 404 path")
	}
}

// TestDispatchPanicRecovery tests that a panicking handler yields a 500
// without killing the server, and outbound still runs
// 패닉하는 핸들러가 서버를 죽이지 않고 500을 반환하며 아웃바운드가 여전히
// 실행되는지 테스트
func TestDispatchPanicRecovery(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.RegisterMiddleware(Registration{
		Name:     "stamp",
		Priority: 0,
		Outbound: func(c *Context) {
			c.ResponseWriter.Header().Set("X-Outbound", "ran")
		},
	})
	app.GET("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}
	if rec.Header().Get("X-Outbound") != "ran" {
		t.Error("Expected outbound middleware to run after a panic")
	}
	if strings.Contains(rec.Body.String(), "kaboom") {
		t.Error("Expected the panic value not to leak into the response")
	}
}

// TestDispatchTimeout tests the per-request deadline: a handler that honors
// its context returns early and the client sees a 504
// 요청별 기한 테스트: 컨텍스트를 준수하는 핸들러는 일찍 반환하고
// 클라이언트는 504를 봅니다
func TestDispatchTimeout(t *testing.T) {
	app := New(WithTemplateDir(""), WithDispatchTimeout(20*time.Millisecond))
	app.GET("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			// Simulates an I/O call observing cancellation: return
			// without writing anything.
		case <-time.After(5 * time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("GET", "/slow", nil))

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("Expected status 504, got %d", rec.Code)
	}
}

// TestDispatchHeaderAfterBody tests that an outbound step can add a header
// after the handler has already written the body
// 핸들러가 본문을 쓴 후에도 아웃바운드 단계가 헤더를 추가할 수 있는지
// 테스트
func TestDispatchHeaderAfterBody(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.RegisterMiddleware(Registration{
		Name:     "late_header",
		Priority: 0,
		Outbound: func(c *Context) {
			c.ResponseWriter.Header().Set("X-Late", "yes")
		},
	})
	app.GET("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("body first"))
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	result := rec.Result()
	if result.Header.Get("X-Late") != "yes" {
		t.Error("Expected header added after body write to reach the client")
	}
	if rec.Body.String() != "body first" {
		t.Errorf("Expected body to survive buffering, got %q", rec.Body.String())
	}
}

// TestDispatchSessionRegeneration tests ID swap on privilege elevation
// 권한 상승 시 ID 교체 테스트
func TestDispatchSessionRegeneration(t *testing.T) {
	app, store := newSessionApp(t)

	app.GET("/login", func(w http.ResponseWriter, r *http.Request) {
		ctx := GetContext(r)
		sess, err := ctx.EnsureSession()
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		sess.Set("user", "guest")
	})
	app.GET("/elevate", func(w http.ResponseWriter, r *http.Request) {
		ctx := GetContext(r)
		sess := ctx.Session()
		sess.Set("user", "admin")
		if _, err := ctx.RegenerateSession(); err != nil {
			t.Fatalf("Failed to regenerate session: %v", err)
		}
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("GET", "/login", nil))
	oldCookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest("GET", "/elevate", nil)
	req.AddCookie(oldCookie)
	rec2 := httptest.NewRecorder()
	app.ServeHTTP(rec2, req)

	newCookies := rec2.Result().Cookies()
	if len(newCookies) != 1 {
		t.Fatalf("Expected a fresh Set-Cookie after regeneration, got %d", len(newCookies))
	}
	if newCookies[0].Value == oldCookie.Value {
		t.Error("Expected a different session ID after regeneration")
	}

	// The old ID no longer resolves; the new one carries the data
	// 이전 ID는 더 이상 해석되지 않고 새 ID가 데이터를 가집니다
	if _, err := store.Get(req.Context(), oldCookie.Value, nil, nil); err == nil {
		t.Error("Expected the old session ID to be gone")
	}
	sess, err := store.Get(req.Context(), newCookies[0].Value, nil, nil)
	if err != nil {
		t.Fatalf("Failed to resolve regenerated session: %v", err)
	}
	if sess.GetString("user") != "admin" {
		t.Errorf("Expected regenerated session to keep its data, got %v", sess.Data["user"])
	}
}

// TestDispatchedCount tests the dispatch counter / 디스패치 카운터 테스트
func TestDispatchedCount(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.GET("/", func(w http.ResponseWriter, r *http.Request) {})

	for i := 0; i < 3; i++ {
		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	}

	if n := app.Dispatcher().DispatchedCount(); n != 3 {
		t.Errorf("Expected 3 dispatches, got %d", n)
	}
}

// TestDispatchWildcardEmptyTail tests that a wildcard route matches an
// empty remainder / 와일드카드 라우트가 빈 나머지와 일치하는지 테스트
func TestDispatchWildcardEmptyTail(t *testing.T) {
	app := New(WithTemplateDir(""))
	app.GET("/files/*path", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("path=" + GetContext(r).Param("path")))
	})

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest("GET", "/files/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected /files/ to match the wildcard, got %d", rec.Code)
	}
	if rec.Body.String() != "path=" {
		t.Errorf("Expected empty wildcard binding, got %q", rec.Body.String())
	}

	rec2 := httptest.NewRecorder()
	app.ServeHTTP(rec2, httptest.NewRequest("GET", "/files/a/b.txt", nil))
	if rec2.Body.String() != "path=a/b.txt" {
		t.Errorf("Expected wildcard to capture the tail, got %q", rec2.Body.String())
	}
}
