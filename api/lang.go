package api

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/tbtrend/align"
	"github.com/bitmark-inc/tbtrend/dataset"
	"github.com/bitmark-inc/tbtrend/plot"
	"github.com/bitmark-inc/tbtrend/store"
	"github.com/bitmark-inc/tbtrend/summary"
	"github.com/bitmark-inc/tbtrend/utils"
)

// localizer prefers the lang query parameter over Accept-Language
func localizer(c *gin.Context, lang string) *i18n.Localizer {
	return utils.NewLocalizer(lang, c.GetHeader("Accept-Language"))
}

func chartLabels(l *i18n.Localizer, region string) plot.Labels {
	return plot.Labels{
		Title:               utils.Localize(l, "ChartTitle", map[string]interface{}{"Region": region}),
		Year:                utils.Localize(l, "AxisYear", nil),
		IncidenceAxis:       utils.Localize(l, "AxisIncidence", nil),
		PercentageAxis:      utils.Localize(l, "AxisPercentage", nil),
		Incidence:           utils.Localize(l, "SeriesIncidence", nil),
		IncidenceLow:        utils.Localize(l, "IncidenceLow", nil),
		IncidenceHigh:       utils.Localize(l, "IncidenceHigh", nil),
		RRNew:               utils.Localize(l, "SeriesRRNew", nil),
		RRPreviouslyTreated: utils.Localize(l, "SeriesRRPreviouslyTreated", nil),
	}
}

// failureMessage is the text shown in place of the chart
func failureMessage(l *i18n.Localizer, region string, err error) string {
	var missing *dataset.MissingFileError
	var malformed *dataset.MalformedInputError
	var orphan *align.OrphanYearError

	data := map[string]interface{}{"Region": region}
	switch {
	case errors.Is(err, store.ErrUnknownRegion):
		return utils.Localize(l, "ErrorUnknownRegion", data)
	case errors.As(err, &missing):
		return utils.Localize(l, "ErrorMissingFile", data)
	case errors.As(err, &malformed):
		data["Reason"] = malformed.Error()
		return utils.Localize(l, "ErrorMalformedInput", data)
	case errors.As(err, &orphan):
		data["Reason"] = orphan.Error()
		return utils.Localize(l, "ErrorMalformedInput", data)
	default:
		return utils.Localize(l, "ErrorInternal", nil)
	}
}

// languageTag is the BCP 47 tag of the language l resolved to
func languageTag(l *i18n.Localizer) string {
	return utils.Localize(l, "LanguageTag", nil)
}

var changeMessages = map[summary.Direction]string{
	summary.Rising:  "ChangeRising",
	summary.Falling: "ChangeFalling",
	summary.Stable:  "ChangeStable",
}

// summaryLines describes the change of each series in one sentence
func summaryLines(l *i18n.Localizer, labels plot.Labels, s summary.Summary) []string {
	lines := []string{}
	for _, item := range []struct {
		series string
		change *summary.Change
	}{
		{labels.Incidence, s.Incidence},
		{labels.RRNew, s.RRNew},
		{labels.RRPreviouslyTreated, s.RRPreviouslyTreated},
	} {
		if item.change == nil {
			continue
		}
		lines = append(lines, utils.Localize(l, changeMessages[item.change.Direction], map[string]interface{}{
			"Series": item.series,
			"Rate":   strconv.FormatFloat(math.Abs(item.change.Rate), 'f', -1, 64),
			"From":   item.change.From,
			"To":     item.change.To,
		}))
	}
	return lines
}
