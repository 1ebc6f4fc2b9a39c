// Package customer exposes the customer service's REST surface.
package customer

import (
	"context"
	"time"

	"github.com/bankingsystem/services/pkg/dto"
	"github.com/bankingsystem/services/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Service is the slice of the customer orchestrator the handlers need.
type Service interface {
	CreateCustomer(ctx context.Context, create dto.CustomerCreate) (*dto.CustomerRead, error)
	GetCustomer(ctx context.Context, customerID int64) (*dto.CustomerRead, error)
	ListCustomers(ctx context.Context, filter dto.CustomerListFilter, page, size int) (*dto.Page[dto.CustomerRead], error)
	UpdateCustomer(ctx context.Context, customerID int64, update dto.CustomerUpdate) (*dto.CustomerRead, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

// Routes registers the customer endpoints:
//   - POST   /customer              : create a customer
//   - GET    /customer              : list customers (name/date filters, paginated)
//   - GET    /customer/:customerId  : fetch one customer
//   - PUT    /customer/:customerId  : partial update of the name fields
//   - DELETE /customer/:customerId  : delete, rejected while accounts reference it
func Routes(app *fiber.App, svc Service) {
	app.Post("/customer", Create(svc))
	app.Get("/customer", List(svc))
	app.Get("/customer/:customerId", GetByID(svc))
	app.Put("/customer/:customerId", Update(svc))
	app.Delete("/customer/:customerId", Delete(svc))
}

// Create handles customer creation.
// @Summary Create a new customer
// @Accept json
// @Produce json
// @Success 201 {object} dto.CustomerRead
// @Failure 400 {object} common.ProblemDetails
// @Router /customer [post]
func Create(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateCustomerRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.CreateCustomer(c.Context(), dto.CustomerCreate{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			OtherName: input.OtherName,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// List handles the paginated, filtered listing. page defaults to 0, size to
// 10; startDate/endDate are ISO dates bounding createdAt inclusively.
func List(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := dto.CustomerListFilter{Name: c.Query("name")}

		startDate, err := parseDateQuery(c, "startDate")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid startDate", err.Error())
		}
		endDate, err := parseDateQuery(c, "endDate")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid endDate", err.Error())
		}
		filter.StartDate = startDate
		filter.EndDate = endDate

		result, err := svc.ListCustomers(c.Context(), filter, c.QueryInt("page", 0), c.QueryInt("size", 10))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}

func GetByID(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "customerId")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer id", err.Error())
		}
		customer, err := svc.GetCustomer(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(customer)
	}
}

func Update(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "customerId")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer id", err.Error())
		}
		input, err := common.BindAndValidate[UpdateCustomerRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.UpdateCustomer(c.Context(), id, dto.CustomerUpdate{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			OtherName: input.OtherName,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}

func Delete(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "customerId")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer id", err.Error())
		}
		if err := svc.DeleteCustomer(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(common.Response{
			Status:  fiber.StatusOK,
			Message: common.Message("customer.deleted.success", id),
		})
	}
}

// parseDateQuery reads an optional ISO date (2006-01-02) query parameter.
func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
