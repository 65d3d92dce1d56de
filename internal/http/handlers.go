package http

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/report"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/service"
)

const bodyLimit = 16 << 20

// NewApp builds the API with public health and metrics endpoints and every
// audit route behind bearer auth.
func NewApp(svcs *service.Services, jwtSecret string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		BodyLimit:    bodyLimit,
		// path ids are kept by the services after the handler returns
		Immutable: true,
	})
	app.Use(RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	metrics := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metrics(c.Context())
		return nil
	})

	Register(app, svcs, AuthRequired(jwtSecret))
	return app
}

func Register(app *fiber.App, svcs *service.Services, auth fiber.Handler) {
	g := app.Group("/", auth)
	registerProjects(g, svcs)
	registerAreas(g, svcs)
	registerEquipment(g, svcs)
	registerNotes(g, svcs)
	registerReports(g, svcs)

	g.Get("categories", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"categories": svcs.Categories, "conditions": domain.Conditions})
	})
	g.Post("calc", func(c *fiber.Ctx) error {
		var in domain.CalcInput
		if err := parse(c, &in); err != nil {
			return err
		}
		if err := in.Validate(); err != nil {
			return err
		}
		tariff := domain.DefaultTariff
		if in.TariffGHSPerKWh != nil {
			tariff = *in.TariffGHSPerKWh
		}
		m := svcs.Calculator.Compute(in.Quantity, in.WattageW, in.HoursPerDay, in.DaysPerWeek)
		return c.JSON(fiber.Map{
			"kwh_per_day":        m.KWhPerDay,
			"kwh_per_month":      m.KWhPerMonth,
			"cost_per_month":     energy.MonthlyCost(m.KWhPerMonth, tariff),
			"tariff_ghs_per_kwh": tariff,
		})
	})
}

func registerProjects(g fiber.Router, svcs *service.Services) {
	g.Post("projects", func(c *fiber.Ctx) error {
		var in domain.ProjectInput
		if err := parse(c, &in); err != nil {
			return err
		}
		p, err := svcs.Projects.Create(c.UserContext(), userID(c), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	})
	g.Get("projects", func(c *fiber.Ctx) error {
		items, err := svcs.Projects.List(c.UserContext(), userID(c))
		if err != nil {
			return err
		}
		return c.JSON(items)
	})
	g.Get("projects/:id", func(c *fiber.Ctx) error {
		p, err := svcs.Projects.Get(c.UserContext(), userID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(p)
	})
	g.Put("projects/:id", func(c *fiber.Ctx) error {
		var in domain.ProjectInput
		if err := parse(c, &in); err != nil {
			return err
		}
		p, err := svcs.Projects.Update(c.UserContext(), userID(c), c.Params("id"), in)
		if err != nil {
			return err
		}
		return c.JSON(p)
	})
	g.Delete("projects/:id", func(c *fiber.Ctx) error {
		if err := svcs.Projects.Delete(c.UserContext(), userID(c), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	g.Get("projects/:id/photos", func(c *fiber.Ctx) error {
		items, err := svcs.Photos.Gallery(c.UserContext(), userID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(items)
	})
}

func registerAreas(g fiber.Router, svcs *service.Services) {
	g.Post("projects/:id/areas", func(c *fiber.Ctx) error {
		var in domain.AreaInput
		if err := parse(c, &in); err != nil {
			return err
		}
		a, err := svcs.Areas.Create(c.UserContext(), userID(c), c.Params("id"), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	})
	g.Get("projects/:id/areas", func(c *fiber.Ctx) error {
		items, err := svcs.Areas.List(c.UserContext(), userID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(items)
	})
	g.Put("areas/:id", func(c *fiber.Ctx) error {
		var in domain.AreaInput
		if err := parse(c, &in); err != nil {
			return err
		}
		a, err := svcs.Areas.Rename(c.UserContext(), userID(c), c.Params("id"), in)
		if err != nil {
			return err
		}
		return c.JSON(a)
	})
	g.Delete("areas/:id", func(c *fiber.Ctx) error {
		if err := svcs.Areas.Delete(c.UserContext(), userID(c), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	g.Post("areas/:id/photo", func(c *fiber.Ctx) error {
		up, err := photo(c, true)
		if err != nil {
			return err
		}
		a, err := svcs.Areas.SetPhoto(c.UserContext(), userID(c), c.Params("id"), *up)
		if err != nil {
			return err
		}
		return c.JSON(a)
	})
}

func registerEquipment(g fiber.Router, svcs *service.Services) {
	// Accepts JSON, or multipart with an "equipment" JSON field and an
	// optional "photo" file.
	g.Post("areas/:id/equipment", func(c *fiber.Ctx) error {
		var in domain.EquipmentInput
		var up *service.PhotoUpload
		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			if err := json.Unmarshal([]byte(c.FormValue("equipment")), &in); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid equipment field")
			}
			var err error
			if up, err = photo(c, false); err != nil {
				return err
			}
		} else if err := parse(c, &in); err != nil {
			return err
		}
		e, err := svcs.Equipment.Create(c.UserContext(), userID(c), c.Params("id"), in, up)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	})
	g.Get("areas/:id/equipment", func(c *fiber.Ctx) error {
		items, err := svcs.Equipment.List(c.UserContext(), userID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(items)
	})
	g.Put("equipment/:id", func(c *fiber.Ctx) error {
		var in domain.EquipmentInput
		if err := parse(c, &in); err != nil {
			return err
		}
		e, err := svcs.Equipment.Update(c.UserContext(), userID(c), c.Params("id"), in)
		if err != nil {
			return err
		}
		return c.JSON(e)
	})
	g.Delete("equipment/:id", func(c *fiber.Ctx) error {
		if err := svcs.Equipment.Delete(c.UserContext(), userID(c), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	g.Post("equipment/:id/photo", func(c *fiber.Ctx) error {
		up, err := photo(c, true)
		if err != nil {
			return err
		}
		e, err := svcs.Equipment.SetPhoto(c.UserContext(), userID(c), c.Params("id"), *up)
		if err != nil {
			return err
		}
		return c.JSON(e)
	})
}

func registerNotes(g fiber.Router, svcs *service.Services) {
	g.Get("projects/:id/observations", func(c *fiber.Ctx) error {
		o, err := svcs.Notes.Observations(c.UserContext(), userID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(o)
	})
	g.Put("projects/:id/observations", func(c *fiber.Ctx) error {
		var in domain.ObservationsInput
		if err := parse(c, &in); err != nil {
			return err
		}
		o, err := svcs.Notes.SaveObservations(c.UserContext(), userID(c), c.Params("id"), in)
		if err != nil {
			return err
		}
		return c.JSON(o)
	})
	g.Post("projects/:id/recommendations", func(c *fiber.Ctx) error {
		var in domain.RecommendationInput
		if err := parse(c, &in); err != nil {
			return err
		}
		r, err := svcs.Notes.AddRecommendation(c.UserContext(), userID(c), c.Params("id"), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	})
	g.Get("projects/:id/recommendations", func(c *fiber.Ctx) error {
		items, err := svcs.Notes.Recommendations(c.UserContext(), userID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(items)
	})
	g.Delete("recommendations/:id", func(c *fiber.Ctx) error {
		if err := svcs.Notes.DeleteRecommendation(c.UserContext(), userID(c), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func registerReports(g fiber.Router, svcs *service.Services) {
	g.Get("projects/:id/summary", func(c *fiber.Ctx) error {
		sum, err := svcs.Reports.Summary(c.UserContext(), userID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(sum)
	})
	export := func(format report.Format) fiber.Handler {
		return func(c *fiber.Ctx) error {
			out, err := svcs.Reports.Export(c.UserContext(), userID(c), c.Params("id"), format, c.QueryBool("archive"))
			if err != nil {
				return err
			}
			if out.Archive != nil {
				c.Set("X-Report-URL", out.Archive.URL)
			}
			c.Attachment(out.FileName)
			c.Set(fiber.HeaderContentType, out.ContentType)
			return c.Send(out.Data)
		}
	}
	g.Get("projects/:id/report.csv", export(report.FormatCSV))
	g.Get("projects/:id/report.xlsx", export(report.FormatXLSX))
	g.Get("projects/:id/exports", func(c *fiber.Ctx) error {
		items, err := svcs.Reports.Exports(c.UserContext(), userID(c), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(items)
	})
}

func parse(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

// photo reads the "photo" form file. A missing file is an error only when
// required.
func photo(c *fiber.Ctx, required bool) (*service.PhotoUpload, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		if required {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Missing photo file")
		}
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unreadable photo file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unreadable photo file")
	}
	return &service.PhotoUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
