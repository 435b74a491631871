package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/tbtrend/align"
	"github.com/bitmark-inc/tbtrend/dataset"
	"github.com/bitmark-inc/tbtrend/schema"
	"github.com/bitmark-inc/tbtrend/store"
	"github.com/bitmark-inc/tbtrend/summary"
)

type trendParams struct {
	Region string `form:"region" binding:"max=64"`
	Lang   string `form:"lang" binding:"max=35"`
}

// trend is the combined table of one region
type trend struct {
	Region schema.Region
	Rows   []schema.TrendRow
}

// loadTrend runs load and align for a region. An empty name selects the
// default region.
func (s *Server) loadTrend(name string) (*trend, error) {
	region := s.store.DefaultRegion()
	if name != "" {
		r, ok := s.store.Region(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", store.ErrUnknownRegion, name)
		}
		region = r
	}

	tables, err := s.store.Load(region.Name)
	if err != nil {
		return nil, err
	}

	rows, err := align.Align(tables.Incidence, tables.Resistance)
	if err != nil {
		return nil, err
	}

	return &trend{Region: region, Rows: rows}, nil
}

// failure maps a load or align error to a status and an error code
func failure(err error) (int, ErrorResponse) {
	var missing *dataset.MissingFileError
	var malformed *dataset.MalformedInputError
	var orphan *align.OrphanYearError

	switch {
	case errors.Is(err, store.ErrUnknownRegion):
		return http.StatusNotFound, errorUnknownRegion
	case errors.As(err, &missing):
		return http.StatusNotFound, errorMissingFile
	case errors.As(err, &malformed):
		return http.StatusInternalServerError, errorMalformedInput
	case errors.As(err, &orphan):
		return http.StatusInternalServerError, errorOrphanYear
	default:
		return http.StatusInternalServerError, errorInternalServer
	}
}

// report sends failures of the data files to sentry
func report(err error) {
	if errors.Is(err, store.ErrUnknownRegion) {
		return
	}
	log.WithError(err).Error("trend unavailable")
	sentry.CaptureException(err)
}

func (s *Server) regions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regions": s.store.Regions(),
		"default": s.store.DefaultRegion().Name,
	})
}

func (s *Server) trends(c *gin.Context) {
	var params trendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	t, err := s.loadTrend(params.Region)
	if err != nil {
		report(err)
		code, resp := failure(err)
		abortWithEncoding(c, code, resp, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"region":  t.Region,
		"rows":    t.Rows,
		"summary": summary.Of(t.Rows),
	})
}

func (s *Server) trendsCSV(c *gin.Context) {
	var params trendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	t, err := s.loadTrend(params.Region)
	if err != nil {
		report(err)
		code, resp := failure(err)
		abortWithEncoding(c, code, resp, err)
		return
	}

	var buf bytes.Buffer
	if err := dataset.WriteTrend(&buf, t.Rows); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_trend.csv"`, t.Region.Key))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
