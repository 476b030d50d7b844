package httpapi

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nikolayk812/jewelshop/internal/domain"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", domain.ErrValidation, name)
	}
	return id, nil
}

// pageQuery reads ?page=&limit=, both optional.
func pageQuery(c *gin.Context) (domain.Page, error) {
	number, err := intQuery(c, "page", 1)
	if err != nil {
		return domain.Page{}, err
	}

	size, err := intQuery(c, "limit", domain.DefaultPageSize)
	if err != nil {
		return domain.Page{}, err
	}

	return domain.NewPage(number, size), nil
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrValidation, name)
	}

	return v, nil
}
