package controllers

import (
	"errors"
	"net/http"

	"Feni2Backend/util"
)

// statusFromError maps service failures onto the 404/400 split.
func statusFromError(err error) int {
	var nf *util.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
