// Package request - разбор общих частей входящих запросов.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"freight/internal/entities"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var (
	ErrInvalidID    = errors.New("invalid id")
	ErrInvalidBody  = errors.New("invalid request body")
	ErrInvalidQuery = errors.New("invalid query parameter")
)

// PathID читает {id} из пути.
func PathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	return id, nil
}

func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// LoadFilter собирает фильтр из ?status=&limit=&offset=.
func LoadFilter(r *http.Request) (entities.LoadFilter, error) {
	var filter entities.LoadFilter
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		loadStatus := entities.LoadStatus(status)
		filter.Status = &loadStatus
	}

	var err error
	if filter.Limit, err = parseUint(query.Get("limit")); err != nil {
		return entities.LoadFilter{}, fmt.Errorf("limit: %w", err)
	}
	if filter.Offset, err = parseUint(query.Get("offset")); err != nil {
		return entities.LoadFilter{}, fmt.Errorf("offset: %w", err)
	}
	return filter, nil
}

func parseUint(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return v, nil
}
