// Package http provides http transport for trends
package http

import (
	stdhttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"wordtrends/internal/modkit/httpkit"
	perr "wordtrends/internal/platform/errors"
	"wordtrends/internal/services/api/trends/domain"
)

// chart bytes only change with a new dataset load, which changes the ETag too
const chartCacheControl = "public, max-age=3600"

// Register mounts trends endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// selectable values of the loaded dataset
	httpkit.GetJSON(r, "/options", h.options)

	// figure json for a selection
	httpkit.PostJSON[domain.SeriesInput](r, "/series", h.series)

	// rendered image for a selection
	httpkit.GetQuery(r, "/chart", ParseChartQuery, h.chart)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /trends/options Trends trendsOptions
// @Summary Selectable categories, metrics and granularities
// @Tags Trends
// @Produce json
// @Success 200 {object} domain.OptionsResponse "ok"
// @Router /trends/options [get]
func (h *handlers) options(r *stdhttp.Request) (any, error) {
	return h.svc.Options(r.Context()), nil
}

// swagger:route POST /trends/series Trends trendsSeries
// @Summary Figure for a word and category selection
// @Tags Trends
// @Accept json
// @Produce json
// @Param payload body domain.SeriesInput true "Selection"
// @Success 200 {object} domain.Figure "ok"
// @Failure 404 {object} httpkit.Envelope "granularity not loaded"
// @Failure 422 {object} httpkit.Envelope "unknown granularity, metric or category"
// @Router /trends/series [post]
func (h *handlers) series(r *stdhttp.Request, in domain.SeriesInput) (any, error) {
	return h.svc.Series(r.Context(), in)
}

// swagger:route GET /trends/chart Trends trendsChart
// @Summary Rendered chart image
// @Tags Trends
// @Produce image/svg+xml,image/png
// @Param granularity query string false "monthly or yearly"
// @Param metric query string false "freq, prop or rank"
// @Param words query string false "comma separated words"
// @Param categories query string false "comma separated or repeated"
// @Param format query string false "svg or png"
// @Param width query int false "pixels"
// @Param height query int false "pixels"
// @Success 200 {file} file "image"
// @Success 304 "not modified"
// @Router /trends/chart [get]
func (h *handlers) chart(r *stdhttp.Request, q domain.ChartQuery) httpkit.Response {
	img, err := h.svc.Chart(r.Context(), q)
	if err != nil {
		return httpkit.Error(err)
	}
	resp := httpkit.Bytes(httpkit.Blob{
		ContentType:  img.ContentType,
		ETag:         img.ETag,
		CacheControl: chartCacheControl,
		Data:         img.Data,
	})
	resp.Header = stdhttp.Header{}
	if len(img.NotFound) > 0 {
		resp.Header.Set("X-Words-Not-Found", strings.Join(img.NotFound, ","))
	}
	if img.Cached {
		resp.Header.Set("X-Chart-Cache", "hit")
	} else {
		resp.Header.Set("X-Chart-Cache", "miss")
	}
	return resp
}

// ParseChartQuery reads a ChartQuery from the url query
// categories may repeat, be comma separated, or both
func ParseChartQuery(r *stdhttp.Request) (domain.ChartQuery, error) {
	v := r.URL.Query()
	q := domain.ChartQuery{
		SeriesInput: domain.SeriesInput{
			Granularity: v.Get("granularity"),
			Metric:      v.Get("metric"),
			Words:       strings.Join(v["words"], ","),
			Categories:  splitList(v["categories"]),
		},
		Format: v.Get("format"),
	}
	var err error
	if q.Width, err = intParam(v, "width"); err != nil {
		return q, err
	}
	if q.Height, err = intParam(v, "height"); err != nil {
		return q, err
	}
	return q, nil
}

// splitList keeps "categories=" apart from an absent parameter
func splitList(vals []string) []string {
	if vals == nil {
		return nil
	}
	out := []string{}
	for _, v := range vals {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func intParam(v url.Values, name string) (int, error) {
	s := strings.TrimSpace(v.Get(name))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, perr.WithField(perr.Validationf("%s must be an integer", name), name)
	}
	return n, nil
}
