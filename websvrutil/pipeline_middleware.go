package websvrutil

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/arkd0ng/webcore/logging"
)

// This file holds the pre-built pipeline registrations — the two-phase
// counterparts of the classic middleware in middleware.go. They share the
// same Config types, so a caller migrating from App.Use(CORS()) to
// App.RegisterMiddleware(CORSRegistration()) keeps its configuration
// untouched and gains Capture/ShortCircuit signalling plus the strict
// reverse-order outbound guarantee.
//
// 이 파일은 사전 구축된 파이프라인 등록을 보유합니다 — middleware.go에 있는
// 클래식 미들웨어의 2단계 대응물입니다.

// Suggested priorities for the pre-built registrations. Lower runs earlier
// inbound and later outbound, so the access log opens first and closes
// last around everything else.
const (
	PriorityAccessLog     = -100
	PriorityRequestID     = -50
	PriorityCORS          = 0
	PriorityCSRF          = 25
	PrioritySecureHeaders = 50
)

// CORSRegistration returns a pipeline registration handling Cross-Origin
// Resource Sharing with default settings (all origins, common methods and
// headers).
//
// CORSRegistration은 기본 설정으로 Cross-Origin Resource Sharing을 처리하는
// 파이프라인 등록을 반환합니다.
func CORSRegistration() Registration {
	return CORSRegistrationWithConfig(CORSConfig{})
}

// CORSRegistrationWithConfig returns a CORS pipeline registration with
// custom configuration. The inbound step sets the Access-Control-* headers
// and answers preflight OPTIONS requests itself with 204 and a Capture
// action, so the handler never runs for a preflight but the outbound chain
// (logging, request-id) still observes it.
//
// CORSRegistrationWithConfig는 커스텀 설정으로 CORS 파이프라인 등록을
// 반환합니다. 인바운드 단계는 Access-Control-* 헤더를 설정하고 프리플라이트
// OPTIONS 요청에 직접 204와 Capture 액션으로 응답합니다.
func CORSRegistrationWithConfig(config CORSConfig) Registration {
	// Set defaults if not provided
	// 제공되지 않은 경우 기본값 설정
	if len(config.AllowOrigins) == 0 {
		config.AllowOrigins = []string{"*"}
	}
	if len(config.AllowMethods) == 0 {
		config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(config.AllowHeaders) == 0 {
		config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	}

	return Registration{
		Name:     "cors",
		Priority: PriorityCORS,
		Inbound: func(c *Context) Action {
			w := c.ResponseWriter
			r := c.Request

			origin := r.Header.Get("Origin")
			if origin != "" && isOriginAllowed(origin, config.AllowOrigins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			} else if len(config.AllowOrigins) == 1 && config.AllowOrigins[0] == "*" {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}

			if len(config.AllowMethods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", joinStrings(config.AllowMethods, ", "))
			}

			if len(config.AllowHeaders) > 0 {
				w.Header().Set("Access-Control-Allow-Headers", joinStrings(config.AllowHeaders, ", "))
			}

			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if config.MaxAge > 0 {
				w.Header().Set("Access-Control-Max-Age", fmt.Sprintf("%d", int(config.MaxAge.Seconds())))
			}

			// Preflight requests are answered here; the handler never runs.
			// 프리플라이트 요청은 여기서 응답하며, 핸들러는 실행되지 않습니다.
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return Capture
			}

			return Continue
		},
	}
}

// RequestIDRegistration returns a pipeline registration that assigns each
// request a correlation ID with default settings.
//
// RequestIDRegistration은 기본 설정으로 각 요청에 상관관계 ID를 할당하는
// 파이프라인 등록을 반환합니다.
func RequestIDRegistration() Registration {
	return RequestIDRegistrationWithConfig(RequestIDConfig{})
}

// RequestIDRegistrationWithConfig returns a RequestID pipeline registration
// with custom configuration. The ID is exposed three ways: as a response
// header, as a Context local ("request_id"), and inside the request's
// context.Context — the error-page renderer picks it up from the last one.
//
// RequestIDRegistrationWithConfig는 커스텀 설정으로 RequestID 파이프라인
// 등록을 반환합니다.
func RequestIDRegistrationWithConfig(config RequestIDConfig) Registration {
	// Set defaults
	// 기본값 설정
	if config.Header == "" {
		config.Header = "X-Request-ID"
	}
	if config.Generator == nil {
		config.Generator = generateRequestID
	}

	return Registration{
		Name:     "request_id",
		Priority: PriorityRequestID,
		Inbound: func(c *Context) Action {
			requestID := c.Request.Header.Get(config.Header)
			if requestID == "" {
				requestID = config.Generator()
			}

			c.ResponseWriter.Header().Set(config.Header, requestID)
			c.Set("request_id", requestID)
			c.Request = c.Request.WithContext(
				context.WithValue(c.Request.Context(), "request_id", requestID))
			return Continue
		},
	}
}

// SecureHeadersRegistration returns a pipeline registration adding
// security-related HTTP headers with default settings.
//
// SecureHeadersRegistration은 기본 설정으로 보안 관련 HTTP 헤더를 추가하는
// 파이프라인 등록을 반환합니다.
func SecureHeadersRegistration() Registration {
	return SecureHeadersRegistrationWithConfig(SecureHeadersConfig{})
}

// SecureHeadersRegistrationWithConfig returns a SecureHeaders pipeline
// registration with custom configuration. The headers are applied
// outbound, after the handler has decided the response, so they are
// present on handler responses and short-circuited responses alike.
//
// SecureHeadersRegistrationWithConfig는 커스텀 설정으로 SecureHeaders
// 파이프라인 등록을 반환합니다.
func SecureHeadersRegistrationWithConfig(config SecureHeadersConfig) Registration {
	// Set defaults
	// 기본값 설정
	if config.XFrameOptions == "" {
		config.XFrameOptions = "SAMEORIGIN"
	}
	if config.XContentTypeOptions == "" {
		config.XContentTypeOptions = "nosniff"
	}
	if config.XXSSProtection == "" {
		config.XXSSProtection = "1; mode=block"
	}
	if config.StrictTransportSecurity == "" {
		config.StrictTransportSecurity = "max-age=31536000; includeSubDomains"
	}
	if config.ReferrerPolicy == "" {
		config.ReferrerPolicy = "strict-origin-when-cross-origin"
	}

	return Registration{
		Name:     "secure_headers",
		Priority: PrioritySecureHeaders,
		Outbound: func(c *Context) {
			w := c.ResponseWriter
			w.Header().Set("X-Frame-Options", config.XFrameOptions)
			w.Header().Set("X-Content-Type-Options", config.XContentTypeOptions)
			w.Header().Set("X-XSS-Protection", config.XXSSProtection)
			w.Header().Set("Referrer-Policy", config.ReferrerPolicy)

			// HSTS only makes sense over TLS
			// HSTS는 TLS에서만 의미가 있습니다
			if c.Request.TLS != nil {
				w.Header().Set("Strict-Transport-Security", config.StrictTransportSecurity)
			}

			if config.ContentSecurityPolicy != "" {
				w.Header().Set("Content-Security-Policy", config.ContentSecurityPolicy)
			}
		},
	}
}

// AccessLogRegistration returns a pipeline registration that logs one line
// per request through logger (logging.Default() when nil), recording the
// method, path, pipeline action, and wall time from first inbound step to
// last outbound step.
//
// AccessLogRegistration은 logger를 통해 요청당 한 줄을 기록하는 파이프라인
// 등록을 반환합니다.
func AccessLogRegistration(logger *logging.Logger) Registration {
	if logger == nil {
		logger = logging.Default()
	}

	return Registration{
		Name:     "access_log",
		Priority: PriorityAccessLog,
		Inbound: func(c *Context) Action {
			c.Set("access_log_start", time.Now())
			return Continue
		},
		Outbound: func(c *Context) {
			start, _ := c.Get("access_log_start")
			var elapsed time.Duration
			if t, ok := start.(time.Time); ok {
				elapsed = time.Since(t)
			}
			logger.Info("request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"action", c.Action().String(),
				"duration", elapsed,
			)
		},
	}
}
