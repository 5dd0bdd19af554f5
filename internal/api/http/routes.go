package httpapi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/temperature-chart/internal/chart"
	"github.com/i474232898/temperature-chart/internal/store"
	"github.com/i474232898/temperature-chart/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, formatter chart.Formatter) {
	h := &handlers{service: service, formatter: formatter}

	v1 := app.Group("/api/v1")
	v1.Get("/series", h.latestSeries)
	v1.Post("/series", h.createSeries)
	v1.Get("/series/:id", h.getSeries)
	v1.Get("/series/:id/chart", h.seriesChart)

	app.Get("/charts", h.locationPage)
	app.Get("/charts/:id", h.seriesPage)
}

type handlers struct {
	service   *weather.Service
	formatter chart.Formatter
}

func (h *handlers) latestSeries(c *fiber.Ctx) error {
	stored, err := h.latest(c)
	if err != nil {
		return err
	}
	return c.JSON(stored)
}

func (h *handlers) createSeries(c *fiber.Ctx) error {
	var body seriesBody
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid series body")
	}
	if err := validate.Struct(body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	stored := h.service.Put(weather.Series{Time: body.Time, Temperature2m: body.Temperature2m})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": stored.ID})
}

func (h *handlers) getSeries(c *fiber.Ctx) error {
	stored, err := h.byID(c)
	if err != nil {
		return err
	}
	return c.JSON(stored)
}

func (h *handlers) seriesChart(c *fiber.Ctx) error {
	stored, err := h.byID(c)
	if err != nil {
		return err
	}
	return c.JSON(h.formatter.Build(stored.Series))
}

func (h *handlers) seriesPage(c *fiber.Ctx) error {
	stored, err := h.byID(c)
	if err != nil {
		return err
	}
	return h.renderPage(c, stored)
}

func (h *handlers) locationPage(c *fiber.Ctx) error {
	stored, err := h.latest(c)
	if err != nil {
		return err
	}
	return h.renderPage(c, stored)
}

func (h *handlers) renderPage(c *fiber.Ctx, stored weather.StoredSeries) error {
	title := chart.DatasetLabel
	if stored.Location != nil {
		title = fmt.Sprintf("%s: %s", chart.DatasetLabel, stored.Location)
	}

	page, err := chart.Page(title, h.formatter.Build(stored.Series))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}

func (h *handlers) byID(c *fiber.Ctx) (weather.StoredSeries, error) {
	stored, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return stored, fiber.NewError(fiber.StatusNotFound, "no temperature series for requested id")
		}
		return stored, fiber.NewError(fiber.StatusInternalServerError, "failed to load temperature series")
	}
	return stored, nil
}

func (h *handlers) latest(c *fiber.Ctx) (weather.StoredSeries, error) {
	q, err := parseLocationQuery(c)
	if err != nil {
		return weather.StoredSeries{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	stored, err := h.service.Latest(c.UserContext(), q.toLocation(), q.Days)
	if err != nil {
		return stored, fiber.NewError(fiber.StatusBadGateway, "failed to fetch temperature series")
	}
	return stored, nil
}

// seriesBody is the input contract: index-aligned timestamps and temperatures.
// Equal lengths are not enforced.
type seriesBody struct {
	Time          []string   `json:"time" validate:"required"`
	Temperature2m []*float64 `json:"temperature_2m" validate:"required"`
}

// locationQuery holds query parameters for identifying a location.
type locationQuery struct {
	Name      string
	Latitude  *float64 `validate:"required,gte=-90,lte=90"`
	Longitude *float64 `validate:"required,gte=-180,lte=180"`
	Days      int      `validate:"omitempty,min=1,max=16"`
}

func (l locationQuery) toLocation() weather.Location {
	return weather.Location{
		Name:      l.Name,
		Latitude:  *l.Latitude,
		Longitude: *l.Longitude,
	}
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	q.Name = c.Query("name")

	var err error
	if q.Latitude, err = parseOptionalFloat(c.Query("latitude")); err != nil {
		return q, errors.New("latitude must be a number")
	}
	if q.Longitude, err = parseOptionalFloat(c.Query("longitude")); err != nil {
		return q, errors.New("longitude must be a number")
	}
	if days := c.Query("days"); days != "" {
		if q.Days, err = strconv.Atoi(days); err != nil {
			return q, errors.New("days must be an integer")
		}
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
