package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/ent/product"
	"github.com/hpc-toolchain/license-manager/pkg/services"
)

// createProductHandler handles POST /api/v1/products.
func (s *Server) createProductHandler(c *echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.productService.Create(c.Request().Context(), services.CreateProductInput{
		Name: req.Name,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// listProductsHandler handles GET /api/v1/products.
func (s *Server) listProductsHandler(c *echo.Context) error {
	params, err := parseListParams(c, product.FieldID, product.FieldName)
	if err != nil {
		return err
	}

	rows, err := s.productService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// getProductHandler handles GET /api/v1/products/:id.
func (s *Server) getProductHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	row, err := s.productService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}

// updateProductHandler handles PUT /api/v1/products/:id.
func (s *Server) updateProductHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.productService.Update(c.Request().Context(), id, services.UpdateProductInput{
		Name: req.Name,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// deleteProductHandler handles DELETE /api/v1/products/:id.
func (s *Server) deleteProductHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	if err := s.productService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: "deleted"})
}
