package api

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/tbtrend/plot"
)

// interactiveChart serves the standalone chart page the dashboard embeds
func (s *Server) interactiveChart(c *gin.Context) {
	var params trendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	l := localizer(c, params.Lang)

	t, err := s.loadTrend(params.Region)
	if err != nil {
		report(err)
		code, _ := failure(err)
		c.HTML(code, "message.tmpl", gin.H{
			"Lang":    languageTag(l),
			"Message": failureMessage(l, s.regionName(params.Region), err),
		})
		return
	}

	fig := plot.BuildFigure(t.Rows, chartLabels(l, t.Region.Name))

	var buf bytes.Buffer
	if err := plot.RenderInteractive(&buf, fig); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// staticChart serves /chart.png and /chart.svg
func (s *Server) staticChart(c *gin.Context) {
	var params trendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	format := plot.PNG
	if strings.HasSuffix(c.Request.URL.Path, ".svg") {
		format = plot.SVG
	}

	t, err := s.loadTrend(params.Region)
	if err != nil {
		report(err)
		code, resp := failure(err)
		abortWithEncoding(c, code, resp, err)
		return
	}

	fig := plot.BuildFigure(t.Rows, chartLabels(localizer(c, params.Lang), t.Region.Name))

	var buf bytes.Buffer
	if err := plot.RenderStatic(&buf, format, fig); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// regionName is the display name of a requested region, as given when unknown
func (s *Server) regionName(name string) string {
	if name == "" {
		return s.store.DefaultRegion().Name
	}
	if r, ok := s.store.Region(name); ok {
		return r.Name
	}
	return name
}
