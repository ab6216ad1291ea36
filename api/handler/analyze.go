package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/siteadvisor/analyzer"
	"github.com/use-agent/siteadvisor/fetcher"
	"github.com/use-agent/siteadvisor/models"
)

// Analyze returns a handler for POST /api/v1/analyze.
//
// Orchestration flow:
//  1. Parse request; a missing URL is a 400.
//  2. Normalize the scheme (bare hosts get https://).
//  3. Fetch the page. On any fetch failure, substitute the fixed
//     fallback groups and still answer 200; fetch errors are never
//     surfaced as HTTP errors.
//  4. Run the analyzer checks and shape the report into groups.
func Analyze(f *fetcher.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "URL is required"})
			return
		}

		targetURL := req.NormalizedURL()

		page, err := f.Fetch(c.Request.Context(), targetURL)
		if err != nil {
			slog.Warn("page fetch failed, returning fallback advisories",
				"url", targetURL, "error", err)
			c.JSON(http.StatusOK, models.AnalyzeResponse{
				URL:          targetURL,
				Improvements: analyzer.FallbackGroups(),
			})
			return
		}

		report, err := analyzer.Analyze(page.HTML, targetURL, page.LoadTimeMs)
		if err != nil {
			slog.Error("analysis failed", "url", targetURL, "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Analysis failed"})
			return
		}

		slog.Info("page analyzed",
			"url", targetURL,
			"status", page.StatusCode,
			"load_ms", page.LoadTimeMs,
		)

		c.JSON(http.StatusOK, models.AnalyzeResponse{
			URL:          targetURL,
			Improvements: report.Groups(),
		})
	}
}
