package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// FunctionAllowedHeaders are the request headers browser clients of the rate
// proxy send along with their calls.
var FunctionAllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// FunctionCORS answers cross-origin requests to the public function routes
// from any origin.
func FunctionCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowHeaders:              FunctionAllowedHeaders,
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	})
}

// APICORS allows the configured front-end origin to call the owner API.
func APICORS(allowedOrigin string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// FunctionsPathPrefix is where the public function routes live.
const FunctionsPathPrefix = "/functions/"

// CORS dispatches to FunctionCORS for function routes and to APICORS for
// everything else. It is installed on the engine so preflight requests are
// answered even for paths without an OPTIONS route.
func CORS(apiOrigin string) gin.HandlerFunc {
	functions := FunctionCORS()
	api := APICORS(apiOrigin)
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, FunctionsPathPrefix) {
			functions(c)
			return
		}
		api(c)
	}
}
